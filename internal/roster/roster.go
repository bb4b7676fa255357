package roster

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Daymon_Go/internal/domain"
)

// MaxNicknameLength is the longest accepted nickname, in runes
const MaxNicknameLength = 20

// Roster holds a player's hatched monsters: one in the field, the rest in the sanctuary
type Roster struct {
	Field     *domain.Monster
	Sanctuary [domain.SanctuarySlotCount]*domain.Monster
}

// New returns an empty roster
func New() *Roster {
	return &Roster{}
}

// Clone returns a deep copy of the roster
func (r *Roster) Clone() *Roster {
	c := &Roster{Field: r.Field.Clone()}
	for i, m := range r.Sanctuary {
		c.Sanctuary[i] = m.Clone()
	}
	return c
}

// NewHatchling builds the monster that comes out of an egg of element
func NewHatchling(id string, element domain.Element, now time.Time) *domain.Monster {
	today := now.Format(domain.DateLayout)
	return &domain.Monster{
		ID:              id,
		Element:         domain.NormalizeElement(element),
		Level:           1,
		Hunger:          domain.HatchlingHunger,
		HungerUpdatedAt: now,
		Happiness:       domain.HatchlingHappiness,
		LastDecayDate:   today,
		CareDate:        today,
		CreatedAt:       now,
	}
}

// Admit places a new monster in the field when it is free, otherwise in the
// first empty sanctuary slot. Returns where it went.
func (r *Roster) Admit(m *domain.Monster) (domain.Location, error) {
	if r.Field == nil {
		r.Field = m
		return domain.LocationField, nil
	}
	for i, s := range r.Sanctuary {
		if s == nil {
			r.Sanctuary[i] = m
			return domain.SanctuaryLocation(i), nil
		}
	}
	return "", domain.ErrSanctuaryFull
}

// HasRoom reports whether Admit would succeed
func (r *Roster) HasRoom() bool {
	if r.Field == nil {
		return true
	}
	for _, s := range r.Sanctuary {
		if s == nil {
			return true
		}
	}
	return false
}

// SanctuaryToField promotes sanctuary slot i to the field. The previous field
// monster, if any, takes its place in the sanctuary.
func (r *Roster) SanctuaryToField(i int, now time.Time) (*domain.Monster, error) {
	if i < 0 || i >= domain.SanctuarySlotCount {
		return nil, fmt.Errorf("%w: sanctuary %d", domain.ErrInvalidSlot, i)
	}
	promoted := r.Sanctuary[i]
	if promoted == nil {
		return nil, fmt.Errorf("%w: sanctuary %d", domain.ErrSanctuarySlotFree, i)
	}
	r.Sanctuary[i] = r.Field
	r.Field = Normalize(promoted, now)
	return r.Field, nil
}

// ResetField removes the field monster and returns its id
func (r *Roster) ResetField() string {
	if r.Field == nil {
		return ""
	}
	id := r.Field.ID
	r.Field = nil
	return id
}

// ResetSanctuary empties the sanctuary and returns the removed ids
func (r *Roster) ResetSanctuary() []string {
	var ids []string
	for i, m := range r.Sanctuary {
		if m != nil {
			ids = append(ids, m.ID)
		}
		r.Sanctuary[i] = nil
	}
	return ids
}


// DisplayName is the nickname when set, otherwise "<Element> Daymon"
func DisplayName(m *domain.Monster) string {
	if m == nil {
		return ""
	}
	if nick := strings.TrimSpace(m.Nickname); nick != "" {
		return nick
	}
	return cases.Title(language.English).String(string(domain.NormalizeElement(m.Element))) + " Daymon"
}

// Rename sets the monster's nickname; an empty name restores the default display name
func Rename(m *domain.Monster, name string) (*domain.Monster, error) {
	if m == nil {
		return nil, domain.ErrFieldEmpty
	}
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNicknameLength {
		return nil, fmt.Errorf("%w: longer than %d characters", domain.ErrInvalidNickname, MaxNicknameLength)
	}
	c := m.Clone()
	c.Nickname = name
	return c, nil
}

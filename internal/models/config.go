package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/solver-idle/internal/format"
	"github.com/napolitain/solver-idle/internal/solver/bubba"
	"github.com/napolitain/solver-idle/internal/solver/orion"
)

// BubbaConfig is the on-disk state of the meat economy.
// Vector slots that are omitted read as 0.
type BubbaConfig struct {
	Levels         []int          `yaml:"levels" json:"levels"`
	MindfulOffsets []int          `yaml:"mindful_offsets" json:"mindful_offsets"`
	Charisma       map[string]int `yaml:"charisma" json:"charisma"`
	Emulsified     string         `yaml:"emulsified" json:"emulsified"`
	Gifts          []string       `yaml:"gifts" json:"gifts"`
	Meat           Amount         `yaml:"meat" json:"meat"`
	ActivePats     float64        `yaml:"active_pats" json:"active_pats"`
	PatsPerHour    *float64       `yaml:"pats_per_hour" json:"pats_per_hour,omitempty"`
	PoppyFishPower float64        `yaml:"poppy_fish_power" json:"poppy_fish_power"`
	CoinsFound     float64        `yaml:"coins_found" json:"coins_found"`
	DiceRolls      []int          `yaml:"dice_rolls" json:"dice_rolls"`
}

// OrionConfig is the on-disk state of the feather economy
type OrionConfig struct {
	Levels      []int   `yaml:"levels" json:"levels"`
	Feathers    Amount  `yaml:"feathers" json:"feathers"`
	ShinyCount  float64 `yaml:"shiny_count" json:"shiny_count"`
	GoGoOwl     float64 `yaml:"go_go_owl" json:"go_go_owl"`
	GambitBonus float64 `yaml:"gambit_bonus" json:"gambit_bonus"`
}

// Amount is a resource balance. Besides plain numbers it accepts the
// game's display form, such as "1.5QQ" or "12,500".
type Amount float64

// UnmarshalYAML decodes a number or a display string
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!str" {
		v := format.Parse(node.Value)
		if v == 0 && !strings.HasPrefix(strings.TrimSpace(node.Value), "0") {
			return fmt.Errorf("unreadable amount %q", node.Value)
		}
		*a = Amount(v)
		return nil
	}

	var f float64
	if err := node.Decode(&f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// Gift names accepted in BubbaConfig.Gifts
var giftNames = map[string]int{
	"beeg_slice": bubba.GiftBeegSlice,
	"happy":      bubba.GiftHappy,
}

// LoadBubbaConfig loads meat economy state from a YAML or JSON file
func LoadBubbaConfig(path string) (*BubbaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBubbaConfig(data)
}

// LoadOrionConfig loads feather economy state from a YAML or JSON file
func LoadOrionConfig(path string) (*OrionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOrionConfig(data)
}

// ParseBubbaConfig decodes meat economy state. Unknown keys are rejected.
func ParseBubbaConfig(data []byte) (*BubbaConfig, error) {
	config := &BubbaConfig{}
	if err := decodeStrict(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// ParseOrionConfig decodes feather economy state. Unknown keys are rejected.
func ParseOrionConfig(data []byte) (*OrionConfig, error) {
	config := &OrionConfig{}
	if err := decodeStrict(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// decodeStrict decodes a single YAML document; an empty document is valid
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ValidateBubbaConfig checks vector sizes, signs and names
func ValidateBubbaConfig(c *BubbaConfig) error {
	if err := validateLevels("levels", c.Levels, bubba.NumUpgrades); err != nil {
		return err
	}
	if err := validateLevels("mindful_offsets", c.MindfulOffsets, bubba.NumUpgrades); err != nil {
		return err
	}
	for _, i := range bubba.MindfulRestricted {
		if i < len(c.MindfulOffsets) && c.MindfulOffsets[i] != 0 {
			return fmt.Errorf("mindful_offsets: %s cannot carry an offset", bubba.Names[i])
		}
	}

	for name, level := range c.Charisma {
		if _, ok := charismaSlot(name); !ok {
			return fmt.Errorf("charisma: unknown slot %q", name)
		}
		if level < 0 {
			return fmt.Errorf("charisma: negative level %d for %s", level, name)
		}
	}
	if c.Emulsified != "" {
		if _, ok := charismaSlot(c.Emulsified); !ok {
			return fmt.Errorf("emulsified: unknown slot %q", c.Emulsified)
		}
	}

	if len(c.Gifts) > 2 {
		return fmt.Errorf("gifts: at most 2 selections, got %d", len(c.Gifts))
	}
	for _, g := range c.Gifts {
		if _, ok := giftNames[strings.ToLower(g)]; !ok {
			return fmt.Errorf("gifts: unknown gift %q", g)
		}
	}

	scalars := map[string]float64{
		"meat":             float64(c.Meat),
		"active_pats":      c.ActivePats,
		"poppy_fish_power": c.PoppyFishPower,
		"coins_found":      c.CoinsFound,
	}
	if c.PatsPerHour != nil {
		scalars["pats_per_hour"] = *c.PatsPerHour
	}
	for name, v := range scalars {
		if v < 0 {
			return fmt.Errorf("%s: negative value %v", name, v)
		}
	}
	return nil
}

// ValidateOrionConfig checks vector size and signs
func ValidateOrionConfig(c *OrionConfig) error {
	if err := validateLevels("levels", c.Levels, orion.NumUpgrades); err != nil {
		return err
	}
	if c.Feathers < 0 {
		return fmt.Errorf("feathers: negative value %v", c.Feathers)
	}
	if c.ShinyCount < 0 {
		return fmt.Errorf("shiny_count: negative value %v", c.ShinyCount)
	}
	return nil
}

func validateLevels(field string, levels []int, size int) error {
	if len(levels) > size {
		return fmt.Errorf("%s: %d entries, at most %d", field, len(levels), size)
	}
	for i, v := range levels {
		if v < 0 {
			return fmt.Errorf("%s[%d]: negative level %d", field, i, v)
		}
	}
	return nil
}

// charismaSlot resolves a case-insensitive charisma slot name
func charismaSlot(name string) (int, bool) {
	for i, n := range bubba.CharismaNames {
		if strings.EqualFold(n, name) {
			return i, true
		}
	}
	return 0, false
}

// BubbaConfigToState converts a validated BubbaConfig to a State
func BubbaConfigToState(c *BubbaConfig) *bubba.State {
	state := bubba.NewState()

	copy(state.Levels[:], c.Levels)
	copy(state.MindfulOffsets[:], c.MindfulOffsets)

	for name, level := range c.Charisma {
		if slot, ok := charismaSlot(name); ok {
			state.Charisma[slot] = level
		}
	}
	if slot, ok := charismaSlot(c.Emulsified); ok {
		state.EmulsifiedIndex = slot
	}
	for i, g := range c.Gifts {
		if gift, ok := giftNames[strings.ToLower(g)]; ok && i < len(state.SelectedGifts) {
			state.SelectedGifts[i] = gift
		}
	}

	state.Meat = float64(c.Meat)
	state.ActivePats = c.ActivePats
	if c.PatsPerHour != nil {
		state.PatsPerHour = *c.PatsPerHour
	}
	state.PoppyFishPower = c.PoppyFishPower
	state.CoinsFound = c.CoinsFound
	state.DiceRolls = append([]int(nil), c.DiceRolls...)

	return state
}

// OrionConfigToState converts a validated OrionConfig to a State
func OrionConfigToState(c *OrionConfig) *orion.State {
	state := orion.NewState()
	copy(state.Levels[:], c.Levels)
	state.Feathers = float64(c.Feathers)
	state.ShinyCount = c.ShinyCount
	state.GoGoOwl = c.GoGoOwl
	state.GambitBonus = c.GambitBonus
	return state
}

package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-idle/internal/solver/bubba"
	"github.com/napolitain/solver-idle/internal/solver/orion"
)

const bubbaYAML = `
levels: [40, 5, 12, 0, 6, 0, 3, 8, 1]
mindful_offsets: [2, 1]
charisma:
  hustle: 4
  Rizz: 2
emulsified: joy
gifts: [happy]
meat: 5000
active_pats: 120
dice_rolls: [4, 2]
`

func TestParseBubbaConfig(t *testing.T) {
	c, err := ParseBubbaConfig([]byte(bubbaYAML))
	require.NoError(t, err)
	require.NoError(t, ValidateBubbaConfig(c))

	s := BubbaConfigToState(c)
	assert.Equal(t, 40, s.Levels[bubba.FirstSlice])
	assert.Equal(t, 1, s.Levels[bubba.Megaflesh])
	assert.Equal(t, 0, s.Levels[bubba.BigOlCoin], "missing slots read as 0")
	assert.Equal(t, 2, s.MindfulOffsets[bubba.FirstSlice])
	assert.Equal(t, 4, s.Charisma[bubba.Hustle])
	assert.Equal(t, 2, s.Charisma[bubba.Rizz])
	assert.Equal(t, bubba.Joy, s.EmulsifiedIndex)
	assert.True(t, s.HasGift(bubba.GiftHappy))
	assert.False(t, s.HasGift(bubba.GiftBeegSlice))
	assert.Equal(t, 5000.0, s.Meat)
	assert.Equal(t, float64(bubba.DefaultPatsPerHour), s.PatsPerHour)
	assert.Equal(t, []int{4, 2}, s.DiceRolls)
}

func TestParseBubbaConfigAcceptsJSON(t *testing.T) {
	c, err := ParseBubbaConfig([]byte(`{"levels": [1], "meat": 1e12, "pats_per_hour": 25}`))
	require.NoError(t, err)

	s := BubbaConfigToState(c)
	assert.Equal(t, 1, s.Levels[bubba.FirstSlice])
	assert.Equal(t, 1e12, s.Meat)
	assert.Equal(t, 25.0, s.PatsPerHour)
	assert.Equal(t, bubba.NotEmulsified, s.EmulsifiedIndex)
}

func TestParseAmountsWithSuffix(t *testing.T) {
	c, err := ParseBubbaConfig([]byte("meat: 1.5QQ\n"))
	require.NoError(t, err)
	assert.Equal(t, 1.5e18, BubbaConfigToState(c).Meat)

	o, err := ParseOrionConfig([]byte(`{"feathers": "12,500"}`))
	require.NoError(t, err)
	assert.Equal(t, 12500.0, OrionConfigToState(o).Feathers)

	o, err = ParseOrionConfig([]byte(`feathers: "0"`))
	require.NoError(t, err)
	assert.Zero(t, OrionConfigToState(o).Feathers)

	_, err = ParseBubbaConfig([]byte("meat: lots\n"))
	assert.Error(t, err)
}

func TestParseEmptyConfig(t *testing.T) {
	c, err := ParseOrionConfig(nil)
	require.NoError(t, err)
	require.NoError(t, ValidateOrionConfig(c))
	assert.Equal(t, *orion.NewState(), *OrionConfigToState(c))
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := ParseOrionConfig([]byte("levles: [1, 2]\n"))
	assert.Error(t, err)

	_, err = ParseBubbaConfig([]byte("levels: nope\n"))
	assert.Error(t, err)
}

func TestValidateBubbaConfig(t *testing.T) {
	tests := []struct {
		name   string
		config BubbaConfig
		errMsg string
	}{
		{"too many levels", BubbaConfig{Levels: make([]int, bubba.NumUpgrades+1)}, "levels"},
		{"negative level", BubbaConfig{Levels: []int{1, -1}}, "levels[1]"},
		{"restricted offset", BubbaConfig{MindfulOffsets: []int{0, 0, 0, 2}}, "Bubba Boon"},
		{"unknown charisma", BubbaConfig{Charisma: map[string]int{"luck": 1}}, "luck"},
		{"negative charisma", BubbaConfig{Charisma: map[string]int{"joy": -2}}, "joy"},
		{"unknown emulsify", BubbaConfig{Emulsified: "luck"}, "emulsified"},
		{"too many gifts", BubbaConfig{Gifts: []string{"happy", "happy", "happy"}}, "gifts"},
		{"unknown gift", BubbaConfig{Gifts: []string{"socks"}}, "socks"},
		{"negative meat", BubbaConfig{Meat: -1}, "meat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBubbaConfig(&tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.NoError(t, ValidateBubbaConfig(&BubbaConfig{MindfulOffsets: []int{3, 3, 3}}))
}

func TestValidateOrionConfig(t *testing.T) {
	assert.NoError(t, ValidateOrionConfig(&OrionConfig{Levels: []int{10}}))
	assert.Error(t, ValidateOrionConfig(&OrionConfig{Levels: make([]int, orion.NumUpgrades+1)}))
	assert.Error(t, ValidateOrionConfig(&OrionConfig{Levels: []int{-1}}))
	assert.Error(t, ValidateOrionConfig(&OrionConfig{Feathers: -5}))
	assert.Error(t, ValidateOrionConfig(&OrionConfig{ShinyCount: -1}))
}

func TestLoadOrionConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("levels: [10]\nfeathers: 250\ngo_go_owl: 20\n"), 0o644))

	c, err := LoadOrionConfig(path)
	require.NoError(t, err)

	s := OrionConfigToState(c)
	assert.Equal(t, orion.Levels{10}, s.Levels)
	assert.Equal(t, 250.0, s.Feathers)
	assert.Equal(t, 20.0, s.GoGoOwl)

	_, err = LoadOrionConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		present bool
	}{
		{"integer", `7`, 7, true},
		{"zero", `0`, 0, true},
		{"fraction truncated", `2.9`, 2, true},
		{"numeric string", `"12"`, 12, true},
		{"padded numeric string", `" 4 "`, 4, true},
		{"word", `"many"`, 0, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
		{"bool", `true`, 0, false},
		{"array", `[1]`, 0, false},
		{"object", `{"n":1}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Count
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			assert.Equal(t, tt.want, c.Int())
			assert.Equal(t, tt.present, c.Present())
		})
	}
}

func TestCount_String(t *testing.T) {
	assert.Equal(t, "3", NewCount(3).String())
	assert.Equal(t, "—", Count{}.String())
}

func TestCount_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A Count `json:"a"`
		B Count `json:"b"`
	}{A: NewCount(5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":5,"b":null}`, string(b))
}

func TestRecord_DecodeLiteralKeys(t *testing.T) {
	payload := `[{
		"User Name": "Ana Gomez",
		"User Email": "ana@example.com",
		"Google Cloud Skills Boost Profile URL": "https://example.com/ana",
		"Profile URL Status": "All Good",
		"Access Code Redemption Status": "Yes",
		"All Skill Badges & Games Completed": "Yes",
		"# of Skill Badges Completed": 15,
		"Names of Completed Skill Badges": "A | B",
		"# of Arcade Games Completed": "1",
		"Names of Completed Arcade Games": "Level 3"
	}, {
		"User Name": "Bo"
	}]`

	var records []Record
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 2)

	ana := records[0]
	assert.Equal(t, "Ana Gomez", ana.Name)
	assert.Equal(t, "ana@example.com", ana.Email)
	assert.Equal(t, "https://example.com/ana", ana.ProfileURL)
	assert.Equal(t, "All Good", ana.ProfileURLStatus)
	assert.Equal(t, "Yes", ana.RedemptionStatus)
	assert.True(t, ana.Completed())
	assert.Equal(t, 15, ana.BadgeCount.Int())
	assert.Equal(t, "A | B", ana.BadgeNames)
	assert.Equal(t, 1, ana.GameCount.Int())
	assert.Equal(t, "Level 3", ana.GameNames)

	bo := records[1]
	assert.False(t, bo.Completed())
	assert.False(t, bo.BadgeCount.Present())
	assert.Zero(t, bo.GameCount.Int())
}

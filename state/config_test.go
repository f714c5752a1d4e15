package state

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
)

func TestParseLink(t *testing.T) {
	l, err := ParseLink("  A   B  4 ")
	assert.NoError(t, err)
	assert.Equal(t, Link{A: "A", B: "B", Cost: 4}, l)

	l, err = ParseLink("A C -1")
	assert.NoError(t, err)
	assert.Equal(t, RemoveLink, l.Cost)
}

func TestParseLinkErrors(t *testing.T) {
	cases := []struct {
		line string
		msg  string
	}{
		{"A B", "exactly 3 fields"},
		{"A B C D", "exactly 3 fields"},
		{"A B x", "non-integer cost"},
		{"A B -2", "must be non-negative"},
		{"A A 1", "connects A to itself"},
	}
	for _, c := range cases {
		_, err := ParseLink(c.line)
		assert.ErrorContains(t, err, c.msg, "line %q", c.line)
	}
}

func TestScenarioCfgParse(t *testing.T) {
	doc := `routers: [A, B, C]
links:
  - A B 1
  - B C 1
  - A C 4
updates:
  - A C -1
`
	var cfg ScenarioCfg
	assert.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	sc, err := cfg.Parse()
	assert.NoError(t, err)
	assert.Equal(t, []NodeId{"A", "B", "C"}, sc.Routers)
	assert.Equal(t, []Link{
		{A: "A", B: "B", Cost: 1},
		{A: "B", B: "C", Cost: 1},
		{A: "A", B: "C", Cost: 4},
	}, sc.Links)
	assert.Equal(t, []Link{{A: "A", B: "C", Cost: RemoveLink}}, sc.Updates)
}

func TestScenarioCfgParseRejectsDuplicateLink(t *testing.T) {
	cfg := ScenarioCfg{Links: []string{"A B 1", "B A 2"}}
	_, err := cfg.Parse()
	assert.ErrorContains(t, err, "duplicate link")
}

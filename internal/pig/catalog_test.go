package pig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_PartByIDPreservesParts(t *testing.T) {
	c := richCatalog(t)
	for _, p := range c.Parts() {
		got, ok := c.PartByID(p.ID)
		require.True(t, ok, p.ID)
		assert.Equal(t, p, got)
	}

	_, ok := c.PartByID("missing")
	assert.False(t, ok)
}

func TestCatalog_PartitionByCategory(t *testing.T) {
	c := richCatalog(t)

	seen := map[string]int{}
	for _, cat := range Categories {
		for _, p := range c.PartsByCategory(cat) {
			assert.Equal(t, cat, p.Category)
			seen[p.ID]++
		}
	}
	require.Len(t, seen, c.Len())
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}

	assert.NotNil(t, c.PartsByCategory(CategoryNose))
	assert.Empty(t, c.PartsByCategory(CategoryNose))
}

func TestCatalog_PartsByCategoryKeepsInsertionOrder(t *testing.T) {
	c := richCatalog(t)
	var ids []string
	for _, p := range c.PartsByCategory(CategoryBody) {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"body-locked", "body-plump", "body-slim"}, ids)

	require.True(t, c.RegisterPart(Part{ID: "body-tall", Category: CategoryBody, Unlocked: true}))
	last := c.PartsByCategory(CategoryBody)
	assert.Equal(t, "body-tall", last[len(last)-1].ID)
}

func TestCatalog_RegisterPartIsIdempotent(t *testing.T) {
	c := scenarioCatalog(t)
	p := Part{ID: "nose-snout", Category: CategoryNose, Unlocked: true}

	assert.True(t, c.RegisterPart(p))
	p.Name = "Different name"
	assert.False(t, c.RegisterPart(p))

	count := 0
	for _, q := range c.Parts() {
		if q.ID == "nose-snout" {
			count++
			assert.Empty(t, q.Name)
		}
	}
	assert.Equal(t, 1, count)
}

func TestCatalog_RegisterPartRejectsInvalid(t *testing.T) {
	c := scenarioCatalog(t)

	assert.False(t, c.RegisterPart(Part{Category: CategoryNose}))
	assert.False(t, c.RegisterPart(Part{ID: "tail-curly", Category: "tail"}))
	assert.Equal(t, 3, c.Len())
}

func TestCatalog_UpdateConnectionPointKeepsOthers(t *testing.T) {
	c := richCatalog(t)

	require.True(t, c.UpdateConnectionPoint("head-round", "body", Point{X: 99, Y: 98}))
	p, ok := c.PartByID("head-round")
	require.True(t, ok)
	assert.Equal(t, map[string]Point{
		"body": {X: 99, Y: 98},
		"ears": {X: 5, Y: 1},
	}, p.ConnectionPoints)

	assert.False(t, c.UpdateConnectionPoint("missing", "body", Point{}))
	assert.False(t, c.UpdateConnectionPoint("head-round", "", Point{}))
}

func TestCatalog_CloneIsIndependent(t *testing.T) {
	base := richCatalog(t)
	session := base.Clone()

	require.True(t, session.UpdateConnectionPoint("head-round", "body", Point{X: 1, Y: 1}))
	require.True(t, session.UnlockPart("body-locked"))
	require.True(t, session.RegisterPart(Part{ID: "nose-snout", Category: CategoryNose}))

	p, _ := base.PartByID("head-round")
	assert.Equal(t, Point{X: 10, Y: 20}, p.ConnectionPoints["body"])
	locked, _ := base.PartByID("body-locked")
	assert.False(t, locked.Unlocked)
	_, ok := base.PartByID("nose-snout")
	assert.False(t, ok)
}

func TestNewCatalog_Errors(t *testing.T) {
	_, err := NewCatalog(
		Part{ID: "a", Category: CategoryBody},
		Part{ID: "a", Category: CategoryHead},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")

	_, err = NewCatalog(Part{ID: "b", Category: "wings"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `part "b"`)
}

func TestPart_Validate(t *testing.T) {
	tests := []struct {
		name    string
		part    Part
		wantErr bool
	}{
		{"valid", Part{ID: "head-round", Category: CategoryHead}, false},
		{"missing id", Part{Category: CategoryHead}, true},
		{"missing category", Part{ID: "x"}, true},
		{"unknown category", Part{ID: "x", Category: "tail"}, true},
		{"empty color", Part{ID: "x", Category: CategoryBody, ColorOptions: []string{"pink", ""}}, true},
		{"empty point name", Part{ID: "x", Category: CategoryBody, ConnectionPoints: map[string]Point{"": {}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.part.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPart_DisplayName(t *testing.T) {
	assert.Equal(t, "Curly Tail", Part{ID: "x", Name: "Curly Tail"}.DisplayName())
	assert.Equal(t, "Head Round", Part{ID: "head-round"}.DisplayName())
	assert.Equal(t, "Big Snout", Part{ID: "big_snout"}.DisplayName())
}

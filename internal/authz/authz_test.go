package authz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/cli/internal/models"
)

func TestCanManage(t *testing.T) {
	owner := models.User{ID: "u1", UserName: "ada", Role: models.UserRoleUser}
	other := models.User{ID: "u2", UserName: "bob", Role: models.UserRoleUser}
	admin := models.User{ID: "u3", UserName: "mod", Role: models.UserRoleAdmin}

	tests := []struct {
		name    string
		owner   models.UserRef
		current *models.User
		want    bool
	}{
		{"owner as id", models.RefFromID("u1"), &owner, true},
		{"owner as embedded object", models.RefFromUser(owner), &owner, true},
		{"admin regardless of ownership", models.RefFromID("u1"), &admin, true},
		{"non-owner non-admin", models.RefFromID("u1"), &other, false},
		{"nil current user", models.RefFromID("u1"), nil, false},
		{"empty owner ref", models.UserRef{}, &owner, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManage(tt.owner, tt.current))
		})
	}
}

func TestCanManage_WireShapes(t *testing.T) {
	// same rule against refs as the API actually delivers them
	current := models.User{ID: "u1", Role: models.UserRoleUser}

	var asID models.UserRef
	require.NoError(t, json.Unmarshal([]byte(`"u1"`), &asID))
	assert.True(t, CanManage(asID, &current))

	var asObject models.UserRef
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","userName":"ada"}`), &asObject))
	assert.True(t, CanManage(asObject, &current))
}

func TestHasReacted(t *testing.T) {
	current := models.User{ID: "u1"}
	reactions := []models.Reaction{
		{Emoji: "🔥", Users: []models.UserRef{models.RefFromID("u1"), models.RefFromID("u2")}},
		{Emoji: "😂", Users: []models.UserRef{models.RefFromID("u2")}},
	}

	assert.True(t, HasReacted(reactions, "🔥", &current))
	assert.False(t, HasReacted(reactions, "😂", &current), "buckets are independent per emoji")
	assert.False(t, HasReacted(reactions, "💯", &current), "missing bucket means no reaction")
	assert.False(t, HasReacted(nil, "🔥", &current))
	assert.False(t, HasReacted(reactions, "🔥", nil))
}

func TestHasReacted_EmbeddedRef(t *testing.T) {
	current := models.User{ID: "u1"}
	reactions := []models.Reaction{
		{Emoji: "🔥", Users: []models.UserRef{models.RefFromUser(models.User{ID: "u1", UserName: "ada"})}},
	}
	assert.True(t, HasReacted(reactions, "🔥", &current))
}

func TestReactionCount(t *testing.T) {
	reactions := []models.Reaction{
		{Emoji: "🔥", Users: []models.UserRef{models.RefFromID("u1"), models.RefFromID("u2")}},
	}
	assert.Equal(t, 2, ReactionCount(reactions, "🔥"))
	assert.Equal(t, 0, ReactionCount(reactions, "😂"))
}

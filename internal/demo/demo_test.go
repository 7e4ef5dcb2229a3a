package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/models"
)

func TestProfileUpdateSetsNestedFields(t *testing.T) {
	now := time.Date(2023, time.September, 21, 9, 0, 0, 0, time.UTC)
	profile := models.Profile{
		Bio:    "Learning Data Engineering",
		Avatar: "https://avatarlink.com/avatar.png",
		Skills: []string{"SQL", "Python"},
	}

	update := profileUpdate(profile, now)

	set, ok := update["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, profile.Bio, set["profile.bio"])
	assert.Equal(t, profile.Avatar, set["profile.avatar"])
	assert.Equal(t, profile.Skills, set["profile.skills"])
	assert.Equal(t, now, set["updatedAt"])
}

func TestAddTagsUpdateAvoidsDuplicates(t *testing.T) {
	now := time.Date(2023, time.September, 21, 9, 0, 0, 0, time.UTC)
	update := addTagsUpdate([]string{"backend"}, now)

	addToSet, ok := update["$addToSet"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, bson.M{"$each": []string{"backend"}}, addToSet["tags"])

	set, ok := update["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, now, set["updatedAt"])
}

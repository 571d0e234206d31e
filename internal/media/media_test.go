package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

func mediaList(ids ...string) []models.MediaItem {
	out := make([]models.MediaItem, len(ids))
	for i, id := range ids {
		out[i] = models.MediaItem{ID: id, URL: "/" + id + ".jpg", Type: models.MediaImage}
	}
	return out
}

func idsOf(list []models.MediaItem) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.ID
	}
	return out
}

func TestAppendWithinCapacity(t *testing.T) {
	list, result := Append(mediaList("a"), mediaList("b", "c"), 10)
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(list))
	assert.Equal(t, AddResult{Added: 2, Rejected: 0}, result)
}

func TestAppendOverCapacityRejectsOverflow(t *testing.T) {
	list, result := Append(mediaList("a", "b"), mediaList("c", "d", "e"), 3)
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(list))
	assert.Equal(t, AddResult{Added: 1, Rejected: 2}, result)
}

func TestAppendToFullList(t *testing.T) {
	list, result := Append(mediaList("a", "b"), mediaList("c"), 2)
	assert.Equal(t, []string{"a", "b"}, idsOf(list))
	assert.Equal(t, AddResult{Added: 0, Rejected: 1}, result)
}

func TestRemoveByID(t *testing.T) {
	list := RemoveByID(mediaList("a", "b", "c"), "b")
	assert.Equal(t, []string{"a", "c"}, idsOf(list))
}

func TestRemoveByIDAbsent(t *testing.T) {
	list := RemoveByID(mediaList("a", "b"), "z")
	assert.Equal(t, []string{"a", "b"}, idsOf(list))
}

func TestReorderForward(t *testing.T) {
	list := Reorder(mediaList("a", "b", "c", "d"), 0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, idsOf(list))
}

func TestReorderBackward(t *testing.T) {
	list := Reorder(mediaList("a", "b", "c", "d"), 3, 1)
	assert.Equal(t, []string{"a", "d", "b", "c"}, idsOf(list))
}

func TestReorderPreservesElements(t *testing.T) {
	before := mediaList("a", "b", "c", "d", "e")
	after := Reorder(before, 1, 4)
	assert.Len(t, after, len(before))
	assert.ElementsMatch(t, idsOf(before), idsOf(after))
}

func TestReorderIdentityCases(t *testing.T) {
	list := mediaList("a", "b", "c")
	assert.Equal(t, idsOf(list), idsOf(Reorder(list, 1, 1)))
	assert.Equal(t, idsOf(list), idsOf(Reorder(list, -1, 2)))
	assert.Equal(t, idsOf(list), idsOf(Reorder(list, 0, 3)))
	assert.Equal(t, idsOf(list), idsOf(Reorder(list, 5, 0)))
}

func TestIsVideoType(t *testing.T) {
	assert.True(t, IsVideoType("video/mp4"))
	assert.True(t, IsVideoType("video/webm"))
	assert.False(t, IsVideoType("image/jpeg"))
	assert.False(t, IsVideoType(""))
}

func TestIsVideoURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://cdn.example.com/clip.mp4", true},
		{"https://cdn.example.com/clip.MP4", true},
		{"https://cdn.example.com/clip.webm?token=abc", true},
		{"https://cdn.example.com/clip.mov#t=30", true},
		{"https://www.youtube.com/watch?v=xyz", true},
		{"https://vimeo.com/12345", true},
		{"https://cdn.example.com/photo.jpg", false},
		{"https://cdn.example.com/photo.jpg?name=video.mp4.jpg", false},
		{"/static/uploads/abc.jpg", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsVideoURL(tt.url), tt.url)
	}
}

func TestFromURL(t *testing.T) {
	item, err := FromURL("  https://cdn.example.com/clip.mp4  ")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", item.URL)
	assert.Equal(t, models.MediaVideo, item.Type)
	assert.NotEmpty(t, item.ID)

	img, err := FromURL("https://cdn.example.com/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, models.MediaImage, img.Type)
}

func TestFromURLEmpty(t *testing.T) {
	_, err := FromURL("   ")
	assert.Error(t, err)
}

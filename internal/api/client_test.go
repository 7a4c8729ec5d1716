package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/cli/internal/config"
)

func testClient(t *testing.T, token string, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.APIConfig{BaseURL: server.URL + "/api", Timeout: 5 * time.Second}
	return NewClient(cfg, func() string { return token }, zerolog.Nop())
}

func TestClient_BearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := testClient(t, "tok-123", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode([]any{})
	}))

	_, err := client.ListItems(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_AnonymousSkipsAuthHeader(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	client := testClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]string{"authToken": "issued"})
	}))

	token, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "issued", token)
	assert.Empty(t, gotAuth)
	assert.False(t, sawHeader)
}

func TestClient_ErrorDecoding(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"errorMessage field", http.StatusBadRequest, `{"errorMessage":"caption too long"}`, "caption too long"},
		{"message field", http.StatusConflict, `{"message":"email taken"}`, "email taken"},
		{"error field", http.StatusUnauthorized, `{"error":"invalid_token"}`, "invalid_token"},
		{"unparseable body", http.StatusInternalServerError, `<html>oops</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.ListItems(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Status: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&Error{Status: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(context.Canceled))
	assert.False(t, IsUnauthorized(nil))
}

func TestVerify_DecodesWrappedUser(t *testing.T) {
	client := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/verify", r.URL.Path)
		w.Write([]byte(`{"currentLoggedInUser":{"_id":"u1","userName":"ada","role":"ADMIN"}}`))
	}))

	user, err := client.Verify(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "ada", user.UserName)
	assert.True(t, user.IsAdmin())
}

func TestToggleLike_ReturnsServerItem(t *testing.T) {
	client := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/items/i1/like", r.URL.Path)
		w.Write([]byte(`{"_id":"i1","likes":["u1"]}`))
	}))

	item, err := client.ToggleLike(context.Background(), "i1")
	require.NoError(t, err)

	assert.Equal(t, "i1", item.ID)
	assert.Equal(t, 1, item.LikeCount())
}

func TestToggleItemReaction_SendsEmoji(t *testing.T) {
	client := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "🔥", body["emoji"])
		w.Write([]byte(`{"_id":"i1","reactions":[{"emoji":"🔥","users":["u1"]}]}`))
	}))

	item, err := client.ToggleItemReaction(context.Background(), "i1", "🔥")
	require.NoError(t, err)
	require.Len(t, item.Reactions, 1)
	assert.Equal(t, "🔥", item.Reactions[0].Emoji)
}

func TestCreateItem_MultipartFields(t *testing.T) {
	imagePath := writeTempImage(t)

	var caption, tagged string
	var imageName string
	client := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		caption = r.FormValue("caption")
		tagged = r.FormValue("taggedUsers")

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		imageName = header.Filename

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))

	err := client.CreateItem(context.Background(), CreateItemInput{
		ImagePath:   imagePath,
		Caption:     "sunset",
		TaggedUsers: []string{"ada", "grace"},
	})
	require.NoError(t, err)

	assert.Equal(t, "sunset", caption)
	assert.JSONEq(t, `["ada","grace"]`, tagged)
	assert.Equal(t, "photo.png", imageName)
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))
	return path
}

func TestUploadProfilePicture(t *testing.T) {
	imagePath := writeTempImage(t)

	client := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me/profile-picture", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		w.Write([]byte(`{"profilePicture":"https://cdn.example.com/p.png"}`))
	}))

	url, err := client.UploadProfilePicture(context.Background(), imagePath)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/p.png", url)
}

func TestDeleteItem_NoContentBody(t *testing.T) {
	client := testClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteItem(context.Background(), "i1"))
}

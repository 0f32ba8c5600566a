package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nuclight.org/feedctl/pkg/entities"
	"nuclight.org/feedctl/pkg/logger"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, error) { return string(s), nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Client{
		Log:     logger.NewLogger(false),
		BaseURL: server.URL,
	}
}

func TestLoginSendsFormEncodedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret", r.PostForm.Get("password"))

		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-123",
			"token_type":   "bearer",
		})
	})

	token, err := client.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestBearerHeaderFromTokenSource(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "alice"})
	})
	client.Tokens = staticToken("tok-123")

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "alice", user.Username)
}

func TestEmptyTokenOmitsAuthorizationHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present)
		json.NewEncoder(w).Encode([]any{})
	})
	client.Tokens = staticToken("")

	_, err := client.Posts(context.Background(), 0, 10)
	require.NoError(t, err)
}

func TestErrorDetailDecoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Username already registered"})
	})

	_, err := client.Register(context.Background(), RegisterParams{Username: "alice"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Username already registered", apiErr.Detail)
	assert.False(t, apiErr.Unauthorized())
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	})

	_, err := client.Me(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Detail)
}

func TestUnauthorizedStatuses(t *testing.T) {
	assert.True(t, (&Error{StatusCode: http.StatusUnauthorized}).Unauthorized())
	assert.True(t, (&Error{StatusCode: http.StatusForbidden}).Unauthorized())
	assert.False(t, (&Error{StatusCode: http.StatusNotFound}).Unauthorized())
}

func TestUploadMultipartBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploads/", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))

		json.NewEncoder(w).Encode(map[string]any{
			"filename":   header.Filename,
			"url":        "/uploads/files/cat.png",
			"media_type": "image",
			"size":       header.Size,
		})
	})

	result, err := client.Upload(context.Background(), "cat.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/files/cat.png", result.URL)
	assert.Equal(t, entities.MediaKindImage, result.MediaType)
	assert.EqualValues(t, 9, result.Size)
}

func TestUploadEscapesFilenameQuotes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, `odd "name".png`, header.Filename)
		json.NewEncoder(w).Encode(map[string]any{"filename": header.Filename})
	})

	_, err := client.Upload(context.Background(), `odd "name".png`, "image/png", strings.NewReader("x"))
	require.NoError(t, err)
}

func TestPostsPagingQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("skip"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "content": "first"},
			{"id": 2, "content": "second"},
		})
	})

	posts, err := client.Posts(context.Background(), 40, 20)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Content)
}

func TestCreatePostOmitsEmptyOptionalFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]any{"content": "plain"}, payload)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 3, "content": "plain"})
	})

	post, err := client.CreatePost(context.Background(), PostParams{Content: "plain"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, post.ID)
}

func TestReactionEndpoints(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			var payload map[string]bool
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.True(t, payload["is_like"])
			json.NewEncoder(w).Encode(map[string]any{"id": 1, "post_id": 5, "is_like": true})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]string{"message": "Reaction deleted"})
		}
	})

	_, err := client.CreateReaction(context.Background(), 5, true)
	require.NoError(t, err)
	require.NoError(t, client.DeleteReaction(context.Background(), 5))

	assert.Equal(t, []string{"POST /posts/5/reactions", "DELETE /posts/5/reactions"}, calls)
}

func TestProcessPostsQueryAndSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bots/process-posts", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("hours"))
		json.NewEncoder(w).Encode(map[string]any{
			"message":         "Processed recent posts",
			"posts_processed": 8,
			"bots_active":     3,
			"interactions":    21,
		})
	})

	summary, err := client.ProcessPosts(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 8, summary.PostsProcessed)
	assert.Equal(t, 3, summary.BotsActive)
	assert.Equal(t, 21, summary.Interactions)
}

func TestBotLifecyclePaths(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/bots/activate-all", "/bots/deactivate-all":
			json.NewEncoder(w).Encode(map[string]string{"message": "done"})
		default:
			json.NewEncoder(w).Encode(map[string]any{"id": 4, "name": "crit", "is_active": true})
		}
	})

	ctx := context.Background()
	bot, err := client.Bot(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "crit", bot.Name)
	_, err = client.ToggleBot(ctx, 4)
	require.NoError(t, err)
	_, err = client.ActivateAllBots(ctx)
	require.NoError(t, err)
	_, err = client.DeactivateAllBots(ctx)
	require.NoError(t, err)
	require.NoError(t, client.DeleteBot(ctx, 4))

	assert.Equal(t, []string{
		"GET /bots/4",
		"PATCH /bots/4/toggle",
		"POST /bots/activate-all",
		"POST /bots/deactivate-all",
		"DELETE /bots/4",
	}, calls)
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client := &Client{BaseURL: "http://127.0.0.1:1"}

	_, err := client.Me(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

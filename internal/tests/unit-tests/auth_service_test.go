package unit_tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authfront/internal/apiclient"
	"authfront/internal/services"
	"authfront/internal/tests/mocks"
)

func TestAuthService_Login_TextToken(t *testing.T) {
	api := &mocks.APIClientMock{
		RequestFunc: func(ctx context.Context, endpoint string, opts apiclient.Options) (*apiclient.Response, error) {
			return &apiclient.Response{StatusCode: 200, ContentType: "text/plain", Body: []byte("abc.def.ghi")}, nil
		},
	}
	tokens := &mocks.TokenStoreMock{}
	svc := services.NewAuthService(api, tokens)

	token, err := svc.Login(context.Background(), "ada", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
	assert.Zero(t, tokens.Stores(), "Login must not persist the token itself")

	calls := api.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, services.LoginEndpoint, calls[0].Endpoint)
	assert.Equal(t, http.MethodPost, calls[0].Options.Method)
	assert.Equal(t, map[string]string{"username": "ada", "password": "secret"}, toMap(t, calls[0].Options.Body))
}

func TestAuthService_Login_JSONToken(t *testing.T) {
	cases := map[string]string{
		"object": `{"token":"jwt-1","user":{"id":1}}`,
		"string": `"jwt-1"`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			api := &mocks.APIClientMock{
				RequestFunc: func(ctx context.Context, endpoint string, opts apiclient.Options) (*apiclient.Response, error) {
					return jsonResponse(t, body), nil
				},
			}
			token, err := services.NewAuthService(api, &mocks.TokenStoreMock{}).Login(context.Background(), "u", "p")
			require.NoError(t, err)
			assert.Equal(t, "jwt-1", token)
		})
	}
}

func TestAuthService_Login_NoToken(t *testing.T) {
	api := &mocks.APIClientMock{
		RequestFunc: func(ctx context.Context, endpoint string, opts apiclient.Options) (*apiclient.Response, error) {
			return jsonResponse(t, `{"user":"ada"}`), nil
		},
	}

	_, err := services.NewAuthService(api, &mocks.TokenStoreMock{}).Login(context.Background(), "u", "p")
	assert.ErrorIs(t, err, services.ErrNoToken)
}

func TestAuthService_Login_PassesRequestErrorThrough(t *testing.T) {
	want := &apiclient.RequestError{Kind: apiclient.KindStatus, StatusCode: 401, Message: "Invalid credentials"}
	api := &mocks.APIClientMock{
		RequestFunc: func(ctx context.Context, endpoint string, opts apiclient.Options) (*apiclient.Response, error) {
			return nil, want
		},
	}

	_, err := services.NewAuthService(api, &mocks.TokenStoreMock{}).Login(context.Background(), "u", "p")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.True(t, apiclient.IsKind(err, apiclient.KindStatus))
}

func TestAuthService_Register(t *testing.T) {
	api := &mocks.APIClientMock{}
	svc := services.NewAuthService(api, &mocks.TokenStoreMock{})

	require.NoError(t, svc.Register(context.Background(), "ada", "ada@example.com", "pw"))

	calls := api.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, services.RegisterEndpoint, calls[0].Endpoint)
	assert.Equal(t, http.MethodPost, calls[0].Options.Method)
	assert.Equal(t,
		map[string]string{"username": "ada", "email": "ada@example.com", "password": "pw"},
		toMap(t, calls[0].Options.Body))
}

func TestAuthService_LogoutAndAuthenticated(t *testing.T) {
	ctx := context.Background()
	tokens := &mocks.TokenStoreMock{}
	svc := services.NewAuthService(&mocks.APIClientMock{}, tokens)

	ok, err := svc.Authenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tokens.Store(ctx, "t"))
	ok, err = svc.Authenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 1, tokens.Clears())
	ok, err = svc.Authenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_Authenticated_StoreError(t *testing.T) {
	tokens := &mocks.TokenStoreMock{
		RetrieveFunc: func(ctx context.Context) (string, bool, error) {
			return "", false, errors.New("locked")
		},
	}

	_, err := services.NewAuthService(&mocks.APIClientMock{}, tokens).Authenticated(context.Background())
	assert.EqualError(t, err, "read token: locked")
}

func TestAuthService_LoginAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if r.URL.Path != services.LoginEndpoint || string(body) != `{"username":"ada","password":"pw"}` {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "unexpected %s %s", r.URL.Path, body)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("server-token"))
	}))
	defer srv.Close()

	tokens := &mocks.TokenStoreMock{}
	client, err := apiclient.New(srv.URL, tokens)
	require.NoError(t, err)

	token, err := services.NewAuthService(client, tokens).Login(context.Background(), "ada", "pw")
	require.NoError(t, err)
	assert.Equal(t, "server-token", token)
}

// toMap renders a request body the way it goes over the wire.
func toMap(t *testing.T, body any) map[string]string {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func jsonResponse(t *testing.T, body string) *apiclient.Response {
	t.Helper()
	var data any
	require.NoError(t, json.Unmarshal([]byte(body), &data))
	return &apiclient.Response{StatusCode: 200, ContentType: "application/json", Body: []byte(body), Data: data}
}

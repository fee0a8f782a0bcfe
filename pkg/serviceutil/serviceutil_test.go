package serviceutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyAccessToken(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})

	table := []struct {
		header string
		status int
	}{
		{header: "", status: http.StatusUnauthorized},
		{header: "Bearer forkert", status: http.StatusUnauthorized},
		{header: "hemmelig", status: http.StatusUnauthorized},
		{header: "Basic hemmelig", status: http.StatusUnauthorized},
		{header: "Bearer hemmelig", status: http.StatusOK},
	}
	handler := VerifyAccessToken("hemmelig", ok)
	for _, row := range table {
		req := httptest.NewRequest(http.MethodGet, "/api/123/grades", nil)
		if row.header != "" {
			req.Header.Set("Authorization", row.header)
		}
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		require.Equal(t, row.status, res.Code, row.header)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/123/grades", nil)
	res := httptest.NewRecorder()
	VerifyAccessToken("", ok).ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestIsLoopback(t *testing.T) {
	require.True(t, IsLoopback("127.0.0.1:8080"))
	require.True(t, IsLoopback("localhost:8080"))
	require.True(t, IsLoopback("[::1]:8080"))
	require.False(t, IsLoopback(":8080"))
	require.False(t, IsLoopback("0.0.0.0:8080"))
	require.False(t, IsLoopback("192.168.1.10:8080"))
	require.False(t, IsLoopback("8080"))
}

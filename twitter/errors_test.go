package twitter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name        string
		resp        *Response
		wantMessage string
		wantCodes   []int
	}{
		{
			name: "multiple error details",
			resp: &Response{
				StatusCode: http.StatusForbidden,
				Body:       []byte(`{"errors":[{"code":327,"message":"You have already retweeted this Tweet."},{"code":261,"message":"Application cannot perform write actions."}]}`),
			},
			wantMessage: "You have already retweeted this Tweet. (code 327); Application cannot perform write actions. (code 261)",
			wantCodes:   []int{CodeAlreadyRetweeted, 261},
		},
		{
			name:        "html body",
			resp:        &Response{StatusCode: http.StatusBadGateway, Body: []byte(`<html>Bad Gateway</html>`)},
			wantMessage: "Bad Gateway",
		},
		{
			name:        "empty errors array",
			resp:        &Response{StatusCode: http.StatusBadRequest, Body: []byte(`{"errors":[]}`)},
			wantMessage: "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := newAPIError(tt.resp)
			assert.Equal(t, tt.resp.StatusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, string(tt.resp.Body), apiErr.Body)
			for _, code := range tt.wantCodes {
				assert.True(t, apiErr.HasCode(code), "code %d", code)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not Found"}
	assert.Equal(t, "twitter API error: status 404: Not Found", err.Error())
	assert.True(t, err.IsNotFound())
	assert.False(t, err.IsUnauthorized())
	assert.False(t, err.HasCode(CodeNoStatusFound))
}

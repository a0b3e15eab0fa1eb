package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		id      string
		token   string
		wantErr bool
	}{
		{
			name:  "standard URL",
			url:   "https://discord.com/api/webhooks/123456789/abc-def_ghi",
			id:    "123456789",
			token: "abc-def_ghi",
		},
		{
			name:  "trailing slash",
			url:   "https://discord.com/api/webhooks/123456789/abc-def_ghi/",
			id:    "123456789",
			token: "abc-def_ghi",
		},
		{
			name:    "not a webhook URL",
			url:     "https://discord.com/api/channels/123456789",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := ParseWebhookURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.token, token)
		})
	}
}

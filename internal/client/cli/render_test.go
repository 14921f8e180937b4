package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
	"github.com/stretchr/testify/assert"
)

func TestRenderGallery_States(t *testing.T) {
	tests := []struct {
		name  string
		state services.GalleryState
		want  []string
	}{
		{
			name:  "loading",
			state: services.GalleryState{Page: 1, Status: models.FetchLoading},
			want:  []string{"Gallery, page 1", "Loading...", "No image downloaded yet"},
		},
		{
			name:  "failed",
			state: services.GalleryState{Page: 2, Status: models.FetchFail, Error: "timeout"},
			want:  []string{"FAIL", "Error: timeout"},
		},
		{
			name: "downloading",
			state: services.GalleryState{
				Page:        1,
				Status:      models.FetchSuccess,
				Photos:      []models.Photo{{Author: "Paul Jarvis", Width: 2500, Height: 1667, DownloadURL: "https://picsum.photos/id/10/2500/1667"}},
				Downloading: true,
			},
			want: []string{"1. Paul Jarvis", "(2500x1667)", "https://picsum.photos/id/10/2500/1667", "Downloading..."},
		},
		{
			name:  "downloaded",
			state: services.GalleryState{Page: 1, Status: models.FetchSuccess, DownloadedURI: "/tmp/1667"},
			want:  []string{"Downloaded: /tmp/1667"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderGallery(&buf, tt.state)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestRenderForm_MasksSecretsAndTagsRegions(t *testing.T) {
	a := newTestApp(t, "", nil)
	a.register.Set(validation.FieldUsername, "test")
	a.register.Set(validation.FieldEmail, "test@gmail.com")
	a.register.Set(validation.FieldMobile, "98765")
	a.register.Set(validation.FieldPassword, "Secret1")
	a.register.Submit(context.Background())

	var buf bytes.Buffer
	renderForm(&buf, "Register", a.register)
	out := buf.String()

	assert.Contains(t, out, "Enter mobile number:")
	assert.Contains(t, out, "*******")
	assert.NotContains(t, out, "Secret1")
	assert.Contains(t, out, "[errorMobile]")
	assert.Contains(t, out, "Invalid mobile number, it should be 10 digits")
	assert.NotContains(t, out, "[errorEmail]")
	assert.NotContains(t, out, "[commonError]")
}

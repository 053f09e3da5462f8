package rehost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbURL(t *testing.T) {
	tests := []struct {
		name  string
		video string
		want  string
	}{
		{
			name:  "mp4 extension",
			video: "https://res.cloudinary.com/demo/video/upload/v1/instagram_reels/abc.mp4",
			want:  "https://res.cloudinary.com/demo/video/upload/v1/instagram_reels/abc.jpg",
		},
		{
			name:  "mov extension",
			video: "https://res.cloudinary.com/demo/video/upload/v1/instagram_reels/abc.mov",
			want:  "https://res.cloudinary.com/demo/video/upload/v1/instagram_reels/abc.jpg",
		},
		{
			name:  "no extension",
			video: "https://res.cloudinary.com/demo/video/upload/v1/instagram_reels/abc",
			want:  "https://res.cloudinary.com/demo/video/upload/v1/instagram_reels/abc.jpg",
		},
		{
			name:  "dots earlier in the path",
			video: "https://res.cloudinary.com/demo.account/v1.2/abc.webm",
			want:  "https://res.cloudinary.com/demo.account/v1.2/abc.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThumbURL(tt.video))
		})
	}
}

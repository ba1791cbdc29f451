package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	const (
		base   = "https://cdn.example.com"
		bucket = "posters"
	)

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "Объект нашего бакета",
			url:     "https://cdn.example.com/posters/posters/abc.jpg",
			wantKey: "posters/abc.jpg",
			wantOK:  true,
		},
		{
			name:   "Внешний адрес",
			url:    "https://image.tmdb.org/t/p/w500/abc.jpg",
			wantOK: false,
		},
		{
			name:   "Другой бакет",
			url:    "https://cdn.example.com/other/abc.jpg",
			wantOK: false,
		},
		{
			name:   "Пустой ключ",
			url:    "https://cdn.example.com/posters/",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := objectKeyFromURL(base, bucket, tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestMinioClient_PublicURLRoundTrip(t *testing.T) {
	c := &MinioClient{bucketName: "posters", publicURL: "http://localhost:9000"}

	url := c.PublicURL("posters/1.png")
	assert.Equal(t, "http://localhost:9000/posters/posters/1.png", url)

	key, ok := c.ObjectKeyFromURL(url)
	assert.True(t, ok)
	assert.Equal(t, "posters/1.png", key)
}

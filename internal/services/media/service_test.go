package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, file io.Reader, folder string) (*Asset, error) {
	data, _ := io.ReadAll(file)
	args := m.Called(ctx, data, folder)
	asset, _ := args.Get(0).(*Asset)
	return asset, args.Error(1)
}

func (m *MockStorage) Destroy(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

func TestService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		body      []byte
		setupMock func(*MockStorage)
		wantErr   error
	}{
		{
			name: "png accepted",
			body: pngHeader,
			setupMock: func(s *MockStorage) {
				s.On("Upload", ctx, pngHeader, "cosec/specialists").
					Return(&Asset{URL: "https://res.cloudinary.com/demo/a.png", PublicID: "cosec/specialists/a"}, nil)
			},
		},
		{
			name: "jpeg accepted",
			body: jpegHeader,
			setupMock: func(s *MockStorage) {
				s.On("Upload", ctx, jpegHeader, "cosec/specialists").
					Return(&Asset{PublicID: "cosec/specialists/b"}, nil)
			},
		},
		{name: "pdf rejected", body: []byte("%PDF-1.7\n"), wantErr: ErrUnsupportedMedia},
		{name: "plain text rejected", body: []byte("hello"), wantErr: ErrUnsupportedMedia},
		{name: "empty rejected", body: nil, wantErr: ErrEmptyFile},
		{name: "too large", body: append(append([]byte{}, pngHeader...), make([]byte, 64)...), wantErr: ErrMediaTooLarge},
		{
			name: "storage failure surfaces",
			body: pngHeader,
			setupMock: func(s *MockStorage) {
				s.On("Upload", ctx, pngHeader, "cosec/specialists").Return(nil, errStorage)
			},
			wantErr: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := new(MockStorage)
			if tt.setupMock != nil {
				tt.setupMock(storage)
			}
			svc := NewService(storage, "/cosec/specialists/", 32, nil)

			asset, err := svc.Upload(ctx, "photo", bytes.NewReader(tt.body))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, asset)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, asset.PublicID)
			}
			storage.AssertExpectations(t)
		})
	}
}

var errStorage = errors.New("cloudinary unavailable")

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	storage.On("Destroy", ctx, "cosec/specialists/a").Return(nil)
	storage.On("Destroy", ctx, "cosec/specialists/gone").Return(ErrAssetNotFound)

	svc := NewService(storage, "cosec/specialists", 1024, nil)

	assert.NoError(t, svc.Delete(ctx, "cosec/specialists/a"))
	assert.ErrorIs(t, svc.Delete(ctx, "cosec/specialists/gone"), ErrAssetNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "other/folder/a"), ErrOutsideFolder)
	assert.ErrorIs(t, svc.Delete(ctx, "cosec/specialists"), ErrOutsideFolder)
	storage.AssertExpectations(t)
}

func TestService_NotConfigured(t *testing.T) {
	svc := NewService(nil, "cosec/specialists", 1024, nil)

	assert.False(t, svc.Enabled())
	_, err := svc.Upload(context.Background(), "photo", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
	assert.ErrorIs(t, svc.Delete(context.Background(), "cosec/specialists/a"), ErrStorageNotConfigured)
}

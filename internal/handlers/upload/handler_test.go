package upload_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	"salon/internal/domains/upload/model/dto"
	serviceMocks "salon/internal/domains/upload/service/mocks"
	"salon/internal/handlers/upload"
	"salon/transport/http/middleware"
)

func newRouter(t *testing.T, svc *serviceMocks.MockUpload, secret string) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.External.Upload.Secret = secret

	handler := upload.New(svc, middleware.NewSecretMiddleware(mocks.NewOtel(), cfg), mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func multipartBody(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="nails.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_UploadMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := serviceMocks.NewMockUpload(ctrl)
	svc.EXPECT().UploadImage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.UploadImageRequest) (dto.UploadImageResponse, error) {
		assert.Equal(t, "nails.png", req.Image.Filename)
		assert.Equal(t, "image/png", req.Image.Header.Get("Content-Type"))

		data, err := io.ReadAll(req.ImageFile)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)

		return dto.UploadImageResponse{URL: "https://cdn.example.ch/designs/x.png", Name: "nails.png"}, nil
	})

	body, contentType := multipartBody(t, "image/png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newRouter(t, svc, "").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://cdn.example.ch/designs/x.png","name":"nails.png"}`, rec.Body.String())
}

func TestHandler_UploadDataURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := serviceMocks.NewMockUpload(ctrl)
	svc.EXPECT().
		UploadDataURL(gomock.Any(), dto.UploadDataURLRequest{Image: "data:image/png;base64,AAAA", Name: "x.png"}).
		Return(dto.UploadImageResponse{URL: "https://cdn.example.ch/designs/x.png", Name: "x.png"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(`{"image":"data:image/png;base64,AAAA","name":"x.png"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	rec := httptest.NewRecorder()
	newRouter(t, svc, "").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UploadRejected(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		header      string
		contentType string
		body        string
		wantStatus  int
	}{
		{name: "missing secret", secret: "up", contentType: "multipart/form-data; boundary=x", body: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", secret: "up", header: "down", contentType: "multipart/form-data; boundary=x", body: "", wantStatus: http.StatusUnauthorized},
		{name: "no file part", contentType: "multipart/form-data; boundary=x", body: "--x--\r\n", wantStatus: http.StatusBadRequest},
		{name: "json without image", contentType: "application/json", body: `{"name":"x.png"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			if tt.header != "" {
				req.Header.Set("X-Upload-Secret", tt.header)
			}

			rec := httptest.NewRecorder()
			newRouter(t, serviceMocks.NewMockUpload(ctrl), tt.secret).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

package upload

import (
	"mime"
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/upload/model/dto"
	"salon/internal/domains/upload/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
	"salon/transport/http/middleware"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Upload
	secret  middleware.Secret
	otel    otel.Otel
}

func New(service service.Upload, secret middleware.Secret, otel otel.Otel) Handler {
	return Handler{
		service: service,
		secret:  secret,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.secret.Upload).Post("/uploads", handler.UploadImage)
}

// UploadImage stores a design picture and returns its public url.
// Multipart bodies carry the file in "file"; JSON bodies carry a base64 data url.
// @Summary Upload a design image
// @Tags Upload
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param X-Upload-Secret header string false "Shared secret when configured"
// @Param file formData file false "png, jpeg, webp or gif up to 5 MB"
// @Success 200 {object} dto.UploadImageResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/uploads [post]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	var (
		res dto.UploadImageResponse
		err error
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))

	if mediaType == constant.ContentTypeJSON {
		req := dto.UploadDataURLRequest{}

		if err = validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		res, err = handler.service.UploadDataURL(ctx, req)
	} else {
		res, err = handler.uploadMultipart(r)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	response.WithBody(w, http.StatusOK, res)
}

func (handler *Handler) uploadMultipart(r *http.Request) (dto.UploadImageResponse, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.UploadImageResponse{}, failure.Validation(validator.MessageInvalidInput, "file: "+err.Error()) // nolint:wrapcheck
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		return dto.UploadImageResponse{}, failure.Validation(validator.MessageInvalidInput, "file: ist erforderlich") // nolint:wrapcheck
	}
	defer file.Close()

	return handler.service.UploadImage(r.Context(), dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	})
}

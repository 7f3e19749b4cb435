package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"io"
	"path"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/s3"
	"salon/internal/domains/upload/model/dto"
	"salon/shared/base64"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Upload interface {
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	UploadDataURL(ctx context.Context, req dto.UploadDataURLRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	s3   s3.S3
	cfg  *config.Config
	otel otel.Otel
}

func New(s3 s3.S3, cfg *config.Config, otel otel.Otel) Upload {
	return &serviceImpl{
		s3:   s3,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.enabled(); err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateVar(req.Image.Size, "maxfilesize="+s.maxSize()); err != nil {
		return res, err //nolint:wrapcheck
	}

	data, err := io.ReadAll(req.ImageFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")

		return res, failure.InternalFromString(dto.MessageUploadFailed) // nolint:wrapcheck
	}

	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	return s.store(ctx, contentType, req.Image.Filename, data)
}

func (s *serviceImpl) UploadDataURL(ctx context.Context, req dto.UploadDataURLRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadDataURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.enabled(); err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	contentType, data, err := base64.Decode(req.Image)
	if err != nil {
		return res, failure.Validation(validator.MessageInvalidInput, "image: "+err.Error()) // nolint:wrapcheck
	}

	if err = validator.ValidateVar(len(data), "maxfilesize="+s.maxSize()); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.store(ctx, contentType, req.Name, data)
}

// store writes the picture under a random key so uploads never overwrite each other.
func (s *serviceImpl) store(ctx context.Context, contentType, name string, data []byte) (res dto.UploadImageResponse, err error) {
	ext := extensions[contentType]
	if ext == "" {
		ext = strings.ToLower(path.Ext(name))
	}

	url, err := s.s3.UploadFileBytes(ctx, dto.Directory, uuid.NewString()+ext, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload design image")

		return res, failure.InternalFromString(dto.MessageUploadFailed) // nolint:wrapcheck
	}

	return dto.UploadImageResponse{URL: url, Name: name}, nil
}

func (s *serviceImpl) enabled() error {
	if !s.cfg.HasUpload() {
		return failure.InternalFromString(dto.MessageUploadDisabled) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) maxSize() string {
	size := s.cfg.External.Upload.MaxSizeMB
	if size <= 0 {
		size = dto.DefaultMaxFileSizeMB
	}

	return strconv.FormatFloat(size, 'f', -1, 64)
}

package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// imageFormField 이미지 업로드 시 사용하는 multipart 필드 이름
const imageFormField = "image"

// UploadImageHandler 업로드된 이미지 파일을 data URI 표현으로 변환하여 반환합니다. (관리자 전용)
//
// 처리 과정:
//  1. multipart 요청에서 이미지 파일 추출 (필드명: image)
//  2. 파일 크기 검증 (최대 5MB)
//  3. 파일 내용 읽기 (읽기 실패는 복구 가능한 에러로 처리)
//  4. MIME 타입 스니핑 (이미지 형식만 허용)
//  5. base64 인코딩 후 data URI 형식으로 반환
//
// 반환된 data URI는 상품 이미지나 배너 이미지로 그대로 사용할 수 있습니다.
func (h *Handler) UploadImageHandler(c echo.Context) error {
	// 1. 이미지 파일 추출
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgImageFileRequired)
	}

	// 2. 파일 크기 검증
	if fileHeader.Size > constants.MaxUploadImageSize {
		return httputil.NewRequestEntityTooLargeError(constants.ErrMsgImageTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log(c).WithField("error", err).Warn("업로드 이미지 파일 열기 실패")

		return httputil.NewBadRequestError(constants.ErrMsgImageReadFailed)
	}
	defer file.Close()

	// 3. 파일 내용 읽기
	// 선언된 크기를 신뢰하지 않고 읽기 단계에서도 한도를 강제합니다.
	data, err := io.ReadAll(io.LimitReader(file, constants.MaxUploadImageSize+1))
	if err != nil {
		h.log(c).WithField("error", err).Warn("업로드 이미지 파일 읽기 실패")

		return httputil.NewBadRequestError(constants.ErrMsgImageReadFailed)
	}
	if len(data) > constants.MaxUploadImageSize {
		return httputil.NewRequestEntityTooLargeError(constants.ErrMsgImageTooLarge)
	}

	// 4. MIME 타입 스니핑
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return httputil.NewBadRequestError(constants.ErrMsgImageInvalidType)
	}

	// 5. data URI 생성
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	h.log(c).WithFields(applog.Fields{
		"file_name": fileHeader.Filename,
		"file_size": len(data),
		"mime_type": mimeType,
	}).Info("이미지 업로드 처리됨")

	return c.JSON(http.StatusOK, response.ImageUploadResponse{
		ImageURL: dataURI,
	})
}

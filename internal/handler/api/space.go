package api

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/domain/space"
	reqdto "gongsil-api/internal/handler/dto/request"
	resdto "gongsil-api/internal/handler/dto/response"
	"gongsil-api/internal/handler/httperr"
	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/usecase/commands"
	"gongsil-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const maxPhotoBytes = 10 << 20

type SpaceHandler struct {
	cmds commands.SpaceCommands
	q    queries.SpaceQueries
}

func NewSpaceHandler(cmds commands.SpaceCommands, q queries.SpaceQueries) *SpaceHandler {
	return &SpaceHandler{cmds: cmds, q: q}
}

// @Summary Register space
// @Description Register a host listing with its published time table. Photos require multipart/form-data with the JSON body in the "data" part.
// @Tags spaces
// @Accept json,mpfd
// @Produce json
// @Param request body reqdto.RegisterSpaceRequest false "Space (JSON body)"
// @Param data formData string false "Space (JSON) for multipart uploads"
// @Param photoList formData file false "Photos"
// @Success 201 {object} resdto.RegisterSpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/spaces [post]
func (h *SpaceHandler) Register(c *gin.Context) {
	var (
		req    reqdto.RegisterSpaceRequest
		photos []space.Photo
		err    error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		req, photos, err = bindMultipartSpace(c)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.RegisterSpace(c.Request.Context(), req, photos)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/spaces/"+result.ID.String())
	c.JSON(http.StatusCreated, resdto.FromRegisterSpaceResult(result))
}

func bindMultipartSpace(c *gin.Context) (reqdto.RegisterSpaceRequest, []space.Photo, error) {
	var req reqdto.RegisterSpaceRequest
	form, err := c.MultipartForm()
	if err != nil {
		return req, nil, errs.Wrap(err, "parse multipart form")
	}
	data := form.Value["data"]
	if len(data) == 0 {
		return req, nil, errs.New("multipart field \"data\" is required")
	}
	if err := json.Unmarshal([]byte(data[0]), &req); err != nil {
		return req, nil, errs.Wrap(err, "decode data field")
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, nil, err
	}

	files := form.File["photoList"]
	photos := make([]space.Photo, 0, len(files))
	for _, fh := range files {
		photo, err := readPhoto(fh)
		if err != nil {
			return req, nil, err
		}
		photos = append(photos, photo)
	}
	return req, photos, nil
}

func readPhoto(fh *multipart.FileHeader) (space.Photo, error) {
	if fh.Size > maxPhotoBytes {
		return space.Photo{}, errs.Newf("photo %q exceeds %d bytes", fh.Filename, maxPhotoBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return space.Photo{}, errs.Wrapf(err, "open photo %q", fh.Filename)
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		return space.Photo{}, errs.Wrapf(err, "read photo %q", fh.Filename)
	}
	if len(body) > maxPhotoBytes {
		return space.Photo{}, errs.Newf("photo %q exceeds %d bytes", fh.Filename, maxPhotoBytes)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	return space.Photo{Filename: fh.Filename, ContentType: contentType, Data: body}, nil
}

// @Summary Space availability
// @Description Published slots of a space between from and to (inclusive), with compressed ranges
// @Tags spaces
// @Produce json
// @Param id path string true "Space ID"
// @Param from query string false "First date (yyyy-MM-dd)"
// @Param to query string false "Last date (yyyy-MM-dd)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/spaces/{id}/availability [get]
func (h *SpaceHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	from, err := optionalDate(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
		return
	}
	to, err := optionalDate(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), id, from, to)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func optionalDate(raw string) (slot.DateKey, error) {
	if raw == "" {
		return "", nil
	}
	return slot.ParseDateKey(raw)
}

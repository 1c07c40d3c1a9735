package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
)

type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Submit creates a submission for the caller. Accepts either a multipart form
// (fields taskId, optional fileUrl, optional file part) or a JSON body with
// taskId and fileUrl. At least one of file and fileUrl is required.
//
// @Summary      Submit against a task
// @Tags         user
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  formData  string  true   "Task ID"
// @Param        file    formData  file    false  "Submission file"
// @Param        fileUrl formData  string  false  "Self-hosted link"
// @Success      201  {object}  submitTaskResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/submitTask [post]
func (h *SubmissionHandler) Submit(c echo.Context) error {
	caller, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input := ports.SubmitInput{AccountID: caller.AccountID}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		input.TaskID = c.FormValue("taskId")
		input.LinkURL = c.FormValue("fileUrl")

		if fh, ferr := c.FormFile("file"); ferr == nil {
			upload, uerr := readUpload(fh)
			if uerr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
			}
			input.Upload = upload
		}
	} else {
		var req submitTaskRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		input.TaskID = req.TaskID
		input.LinkURL = req.FileURL
	}

	if input.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "taskId is required")
	}
	if input.Upload == nil && input.LinkURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "a file or a fileUrl is required")
	}

	result, err := h.service.Submit(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitTaskResponse{
		Message:      "task submitted successfully",
		SubmissionID: result.ID,
		FileURL:      result.FileURL,
		SubmittedAt:  result.SubmittedAt,
	})
}

// ListMine returns the caller's submissions, newest first.
//
// @Summary      List the caller's submissions
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   submissionResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/submissions [get]
func (h *SubmissionHandler) ListMine(c echo.Context) error {
	caller, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListForAccount(c.Request().Context(), caller.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponses(views))
}

// ListAll returns every submission, newest first. Admin only.
//
// @Summary      List all submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   submissionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/submissions [get]
func (h *SubmissionHandler) ListAll(c echo.Context) error {
	views, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponses(views))
}

// Get returns one submission by ID. Admin only.
//
// @Summary      Get a submission
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  submissionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/submission/{id} [get]
func (h *SubmissionHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	resp := toSubmissionResponses([]ports.SubmissionView{*view})
	return c.JSON(http.StatusOK, resp[0])
}

// Review applies an admin verdict to a submission.
//
// @Summary      Review a submission
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reviewRequest  true  "Verdict"
// @Success      200   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/reviewSubmission [post]
func (h *SubmissionHandler) Review(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Review(c.Request().Context(), ports.ReviewInput{
		SubmissionID: req.SubmissionID,
		Status:       domain.SubmissionStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviewResponse{Message: fmt.Sprintf("submission %s", strings.ToLower(req.Status))})
}

func toSubmissionResponses(views []ports.SubmissionView) []submissionResponse {
	out := make([]submissionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, submissionResponse{
			ID:              v.ID,
			TaskID:          v.TaskID,
			AccountID:       v.AccountID,
			FileURL:         v.FileURL,
			Status:          string(v.Status),
			SubmittedAt:     v.SubmittedAt,
			TaskDescription: v.TaskDescription,
			TaskDeadline:    v.TaskDeadline,
			Username:        v.Username,
		})
	}
	return out
}

func readUpload(fh *multipart.FileHeader) (*ports.UploadInput, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &ports.UploadInput{
		Content:     content,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
	}, nil
}

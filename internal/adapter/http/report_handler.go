package http

import (
	"net/http"

	"glint-backoffice/internal/adapter/middleware"
	"glint-backoffice/internal/domain/report"
	ucReport "glint-backoffice/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *ucReport.Usecase }

func NewReportHandler(uc *ucReport.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

type createReportReq struct {
	Title       string                `json:"title"       validate:"required,max=255"`
	Body        string                `json:"body"`
	Content     []report.ContentBlock `json:"content"     validate:"dive"`
	Attachments []attachmentReq       `json:"attachments" validate:"dive"`
}

type attachmentReq struct {
	Type string `json:"type" validate:"required,oneof=image document video link attachment"`
	Name string `json:"name" validate:"required"`
	URL  string `json:"url"  validate:"required,url"`
}

type decisionReq struct {
	Action  string `json:"action"  validate:"required,decision_action"`
	Comment string `json:"comment"`
}

func (h *ReportHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Overview(c echo.Context) error {
	out, err := h.uc.Overview(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Create(c echo.Context) error {
	var req createReportReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p := report.CreatePayload{Title: req.Title, Body: req.Body, Content: req.Content}
	for _, a := range req.Attachments {
		p.Attachments = append(p.Attachments, report.Attachment{
			Type: report.AttachmentType(a.Type),
			Name: a.Name,
			URL:  a.URL,
		})
	}

	r, err := h.uc.Create(c.Request().Context(), middleware.CurrentSession(c), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *ReportHandler) Decide(c echo.Context) error {
	reportID := c.Param("report_id")
	if reportID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing report_id path param"})
	}
	var req decisionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	dto, err := h.uc.Decide(c.Request().Context(), middleware.CurrentSession(c), ucReport.DecideInput{
		ReportID: reportID,
		Action:   report.DecisionAction(req.Action),
		Comment:  req.Comment,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) History(c echo.Context) error {
	reportID := c.Param("report_id")
	if reportID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing report_id path param"})
	}
	out, err := h.uc.History(c.Request().Context(), middleware.CurrentSession(c), reportID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

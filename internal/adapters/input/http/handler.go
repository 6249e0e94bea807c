package http

import (
	"errors"

	"chatter-notify/internal/domain"
	"chatter-notify/internal/ports/input"
	"chatter-notify/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.NotifyService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.NotifyService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// PostNotification func
/* post a build result to chatter */
// PostNotification godoc
// @Summary Post build notification
// @Description Posts a build status update to the configured Chatter feed
// @Tags NOTIFICATION
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/notification [post]
// @Produce json
// @param PostNotification body NotificationRequest true "PostNotification"
func (hdl *HTTPHandler) PostNotification(c *fiber.Ctx) error {
	var request NotificationRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}
	// Convert HTTP request to domain request
	domainReq := domain.NotificationRequest{
		RecordID:   request.RecordID,
		Title:      request.Title,
		ResultsURL: request.ResultsURL,
		TestHealth: request.TestHealth,
	}
	response, err := hdl.srv.PostBuildResult(c.UserContext(), domainReq)
	if err != nil {
		logrus.Errorln(err)
		return hdl.failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// DeleteNotification func
/* delete a posted notification */
// DeleteNotification godoc
// @Summary Delete notification
// @Description Deletes the feed post on Chatter and marks the history row
// @Tags NOTIFICATION
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/notification/{id} [delete]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) DeleteNotification(c *fiber.Ctx) error {
	id := c.Params("id")
	uid, err := uuid.Parse(id)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	response, err := hdl.srv.DeleteNotification(c.UserContext(), uid)
	if err != nil {
		logrus.Errorln(err)
		return hdl.failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// ListNotifications func
/* list posted notifications */
// ListNotifications godoc
// @Summary List notifications
// @Description Lists recorded build notifications
// @Tags NOTIFICATION
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/notification [get]
// @Produce json
// @param record_id query string false "record id"
// @param page query int false "page"
// @param limit query int false "limit"
func (hdl *HTTPHandler) ListNotifications(c *fiber.Ctx) error {
	var request QueryNotificationRequest
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	condition := domain.QueryNotificationRequest{
		ID:       request.ID,
		RecordID: request.RecordID,
		Limit:    request.Limit,
		Page:     request.Page,
	}
	response, err := hdl.srv.ListNotifications(condition)
	if err != nil {
		logrus.Errorln(err)
		return hdl.failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// failure maps domain failures onto HTTP statuses: Chatter-side rejections
// become 502, missing history rows 404, everything else 500.
func (hdl *HTTPHandler) failure(c *fiber.Ctx, err error) error {
	var (
		fault      *domain.SoapFault
		saveFailed *domain.SaveFailedError
		badStatus  *domain.UnexpectedStatusError
	)
	status := InternalServerError
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotificationNotFound):
		status = NotFound
		code = fiber.StatusNotFound
	case errors.As(err, &fault), errors.As(err, &saveFailed), errors.As(err, &badStatus):
		status = BadGateway
		code = fiber.StatusBadGateway
	}
	msg := ResponseBody{Status: status}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(code).JSON(msg)
}

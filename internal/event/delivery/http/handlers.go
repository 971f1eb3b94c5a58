package http

import (
	"github.com/gin-gonic/gin"

	"calendarize/pkg/response"
)

// Convert godoc
// @Summary     Convert text/image to calendar events
// @Description Extracts one or more structured calendar events from free-form
// @Description text and/or an attached image and returns them with Google
// @Description Calendar, Outlook and iCalendar export artifacts.
// @Tags        Event
// @Accept      multipart/form-data
// @Produce     json
// @Param       text       formData string false "Free-form event description"
// @Param       file       formData file   false "Screenshot, poster or flyer"
// @Param       local_tz   formData string false "Caller's IANA timezone"
// @Param       local_time formData string false "Caller's current local time, RFC 3339; defaults to the server clock when omitted"
// @Param       add_to_calendar formData bool false "Also insert into the configured Google Calendar"
// @Success     200 {object} convertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/convert [POST]
func (h *handler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConvertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Convert(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Convert: %v", err)
		if msg, ok := h.mapError(err); ok {
			response.Error(c, msg)
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, h.newConvertResp(output))
}

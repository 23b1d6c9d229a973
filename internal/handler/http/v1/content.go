package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary List practice quiz questions
// @Description Get the practice quiz questions with options, correct answer index and explanation.
// @Tags Training
// @Produce json
// @Success 200 {array} content.QuizQuestion
// @Router /training/quiz [get]
func (h *Handler) listQuizQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.QuizQuestions())
}

// @Summary List flashcards
// @Description Get the first-aid revision flashcards.
// @Tags Training
// @Produce json
// @Success 200 {array} content.Flashcard
// @Router /training/flashcards [get]
func (h *Handler) listFlashcards(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Flashcards())
}

// @Summary List training videos
// @Description Get the video library metadata.
// @Tags Training
// @Produce json
// @Success 200 {array} content.Video
// @Router /training/videos [get]
func (h *Handler) listVideos(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Videos())
}

// @Summary List revision guides
// @Description Get the revision guide summaries.
// @Tags Training
// @Produce json
// @Success 200 {array} content.Guide
// @Router /training/guides [get]
func (h *Handler) listGuides(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Guides())
}

// @Summary List practical test booking slots
// @Description Get examination slots. With a date query parameter returns slots for that day only, otherwise for the configured number of upcoming days.
// @Tags Training
// @Produce json
// @Param date query string false "Date in YYYY-MM-DD format"
// @Success 200 {array} content.BookingSlot
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Router /booking/slots [get]
func (h *Handler) listBookingSlots(c *gin.Context) {
	log := h.logger.WithField("method", "listBookingSlots")

	if date := c.Query("date"); date != "" {
		slots, err := h.content.SlotsForDate(date)
		if err != nil {
			log.WithError(err).Warn("Invalid booking date requested")
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusOK, slots)
		return
	}

	slots, err := h.content.UpcomingSlots(time.Now(), h.cfg.BookingDays)
	if err != nil {
		log.WithError(err).Error("Failed to build upcoming booking slots")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch booking slots"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

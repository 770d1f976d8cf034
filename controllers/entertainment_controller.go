package controllers

import (
	"net/http"
	"strings"
	"time"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// EntertainmentController is the admin CRUD surface for daily activities
// and night shows, including their schedules.
type EntertainmentController struct {
	entertainments *services.EntertainmentService
	schedules      *services.ScheduleService
}

func NewEntertainmentController(entertainments *services.EntertainmentService, schedules *services.ScheduleService) *EntertainmentController {
	return &EntertainmentController{entertainments: entertainments, schedules: schedules}
}

func (ec *EntertainmentController) List(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	rows, err := ec.entertainments.List(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (ec *EntertainmentController) Get(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	row, err := ec.entertainments.Get(hotelID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

type entertainmentPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  *uint  `json:"category_id"`
	LocationID  *uint  `json:"location_id"`
	IsDaily     bool   `json:"is_daily"`
	IsNightShow bool   `json:"is_night_show"`
}

func (ec *EntertainmentController) Create(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload entertainmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "title is required")
		return
	}

	ent := models.Entertainment{
		HotelID:     hotelID,
		Title:       payload.Title,
		Description: payload.Description,
		CategoryID:  payload.CategoryID,
		LocationID:  payload.LocationID,
		IsDaily:     payload.IsDaily,
		IsNightShow: payload.IsNightShow,
	}
	if err := ec.entertainments.Create(&ent); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, ent)
}

func (ec *EntertainmentController) Update(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	if title, present := fields["title"]; present {
		s, _ := title.(string)
		if strings.TrimSpace(s) == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "title is required")
			return
		}
	}

	if err := ec.entertainments.Update(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (ec *EntertainmentController) Delete(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ec.entertainments.Delete(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}

type schedulePayload struct {
	Weekday     *int    `json:"weekday"`
	Date        *string `json:"date"`
	StartTime   string  `json:"start_time"`
	DurationMin int     `json:"duration_min"`
	Audience    string  `json:"audience"`
}

func (ec *EntertainmentController) ListSchedules(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	entID, ok := idParam(c, "id")
	if !ok {
		return
	}
	schedules, err := ec.schedules.ListForEntertainment(hotelID, entID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedules)
}

func (ec *EntertainmentController) AddSchedule(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	entID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload schedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}

	sched := models.Schedule{
		EntertainmentID: entID,
		Weekday:         payload.Weekday,
		StartTime:       payload.StartTime,
		DurationMin:     payload.DurationMin,
		Audience:        payload.Audience,
	}
	if payload.Date != nil {
		parsed, err := time.Parse("2006-01-02", *payload.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "date must be YYYY-MM-DD")
			return
		}
		sched.Date = &parsed
	}

	if err := ec.schedules.Add(hotelID, &sched); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, sched)
}

func (ec *EntertainmentController) DeleteSchedule(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	schedID, ok := idParam(c, "scheduleId")
	if !ok {
		return
	}
	if err := ec.schedules.Delete(hotelID, schedID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}

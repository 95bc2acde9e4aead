package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/carinsurance-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/carinsurance-service/internal/app"
	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// CarHandler handles car, coverage, claim and history endpoints.
type CarHandler struct {
	service *app.CarService
}

// NewCarHandler creates a new car handler.
func NewCarHandler(service *app.CarService) *CarHandler {
	return &CarHandler{
		service: service,
	}
}

// ListCars handles GET /api/v1/cars
//
// @Summary List cars
// @Description Returns every car with its owner, in id order
// @Tags cars
// @Produce json
// @Success 200 {array} dto.CarResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.service.ListCars(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCarListResponse(cars))
}

// CreateCar handles POST /api/v1/cars
//
// @Summary Register a car
// @Tags cars
// @Accept json
// @Produce json
// @Param request body dto.CreateCarRequest true "Car"
// @Success 201 {object} dto.CarResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "owner not found"
// @Failure 409 {object} dto.ErrorResponse "duplicate VIN"
// @Router /api/v1/cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req dto.CreateCarRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleRequestError(c, err)
		return
	}

	car, err := h.service.CreateCar(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCarResponse(*car))
}

// IsInsuranceValid handles GET /api/v1/cars/:carId/insurance-valid?date=YYYY-MM-DD
//
// @Summary Check insurance validity
// @Description Reports whether any policy of the car covers the date, bounds inclusive
// @Tags cars
// @Produce json
// @Param carId path int true "Car ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.InsuranceValidityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/cars/{carId}/insurance-valid [get]
func (h *CarHandler) IsInsuranceValid(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}

	var query dto.InsuranceValidityQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleRequestError(c, err)
		return
	}

	date, err := domain.ParseDate(query.Date)
	if err != nil {
		dto.HandleError(c, domain.NewValidationErrorWithValue("date", err.Error(), query.Date))
		return
	}

	valid, err := h.service.IsInsuranceValid(c.Request.Context(), carID, date)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InsuranceValidityResponse{
		CarID: carID,
		Date:  date.String(),
		Valid: valid,
	})
}

// RegisterClaim handles POST /api/v1/cars/:carId/claims
//
// @Summary Register a claim
// @Description Stores a claim dated on a day the car was insured and not in the future
// @Tags cars
// @Accept json
// @Produce json
// @Param carId path int true "Car ID"
// @Param request body dto.CreateClaimRequest true "Claim"
// @Success 201 {object} dto.ClaimResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "no coverage on the claim date"
// @Router /api/v1/cars/{carId}/claims [post]
func (h *CarHandler) RegisterClaim(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateClaimRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleRequestError(c, err)
		return
	}

	claim, err := req.ToDomain()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	stored, err := h.service.RegisterClaim(c.Request.Context(), carID, claim)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewClaimResponse(*stored))
}

// GetHistory handles GET /api/v1/cars/:carId/history
//
// @Summary Car history
// @Description Policies and claims of the car ordered by date
// @Tags cars
// @Produce json
// @Param carId path int true "Car ID"
// @Success 200 {array} dto.HistoryEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/cars/{carId}/history [get]
func (h *CarHandler) GetHistory(c *gin.Context) {
	carID, ok := carIDParam(c)
	if !ok {
		return
	}

	events, err := h.service.GetHistory(c.Request.Context(), carID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(events))
}

// carIDParam parses :carId, writing a 400 response when it is invalid.
func carIDParam(c *gin.Context) (int64, bool) {
	id, err := dto.ParseCarID(c.Param("carId"))
	if err != nil {
		dto.HandleError(c, err)
		return 0, false
	}

	return id, true
}

// RegisterCarRoutes registers car routes on the given router group.
func (h *CarHandler) RegisterCarRoutes(rg *gin.RouterGroup) {
	cars := rg.Group("/cars")
	cars.GET("", h.ListCars)
	cars.POST("", h.CreateCar)

	car := cars.Group("/:carId", middleware.CarScope())
	car.GET("/insurance-valid", h.IsInsuranceValid)
	car.POST("/claims", h.RegisterClaim)
	car.GET("/history", h.GetHistory)
}

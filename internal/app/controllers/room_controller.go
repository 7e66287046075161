package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/services"
	"github.com/hostelmate/hostelmate-backend/internal/middleware"
)

// RoomController handles room inventory endpoints
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// Create handles adding a room
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 409 {object} dto.ErrorResponse "Room number already exists"
// @Router /rooms [post]
func (c *RoomController) Create(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromRoom(room)))
}

// List handles listing all rooms
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RoomResponse}
// @Router /rooms [get]
func (c *RoomController) List(ctx *gin.Context) {
	rooms, err := c.roomService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, dto.FromRoom(room))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// GetByID handles retrieving one room
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /rooms/{id} [get]
func (c *RoomController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	room, err := c.roomService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromRoom(room)))
}

// Update handles changing a room's floor or capacity
// @Summary Update a room
// @Description Changes floor or capacity. Capacity cannot drop below current occupancy.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 409 {object} dto.ErrorResponse "Capacity below occupancy"
// @Router /rooms/{id} [put]
func (c *RoomController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromRoom(room)))
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/utsavdotdev/basobas/internal/api/handlers"
	"github.com/utsavdotdev/basobas/internal/models"
	"github.com/utsavdotdev/basobas/internal/search"
	"github.com/utsavdotdev/basobas/internal/services"
)

func TestRoomHandler_GetRoomByID_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRoomSvc := new(MockRoomService)
	mockSessionSvc := new(MockSessionService)
	handler := handlers.NewRoomHandler(mockRoomSvc, mockSessionSvc)

	r := gin.New()
	r.GET("/v1/rooms/:id", handler.GetRoomByID)

	expectedRoom := &models.Room{ID: "1", Title: "Modern Forest Cabin", Type: models.RoomTypeStudio}
	mockRoomSvc.On("FindRoomByID", "1").Return(expectedRoom, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/rooms/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody models.Room
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Equal(t, expectedRoom.ID, respBody.ID)
	assert.Equal(t, expectedRoom.Title, respBody.Title)
	mockRoomSvc.AssertExpectations(t)
}

func TestRoomHandler_GetRoomByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRoomSvc := new(MockRoomService)
	mockSessionSvc := new(MockSessionService)
	handler := handlers.NewRoomHandler(mockRoomSvc, mockSessionSvc)

	r := gin.New()
	r.GET("/v1/rooms/:id", handler.GetRoomByID)

	mockRoomSvc.On("FindRoomByID", "missing").Return(nil, services.ErrRoomNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/rooms/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var respBody map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Contains(t, respBody["error"], "Room not found")
	mockRoomSvc.AssertExpectations(t)
}

func TestRoomHandler_SearchRooms_ParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRoomSvc := new(MockRoomService)
	mockSessionSvc := new(MockSessionService)
	handler := handlers.NewRoomHandler(mockRoomSvc, mockSessionSvc)

	r := gin.New()
	r.GET("/v1/rooms", handler.SearchRooms)

	expected := search.DefaultFilter()
	expected.Search = "cabin"
	expected.Type = "studio"
	expected.Wifi = true
	expected.PriceMin = 500
	expected.PriceMax = 1500
	expected.SortBy = search.SortPriceLow

	mockRoomSvc.On("SearchRooms", expected).Return([]models.Room{{ID: "1"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/rooms?search=cabin&type=studio&wifi=true&price_min=500&price_max=1500&sort=price-low", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody struct {
		Rooms         []models.Room `json:"rooms"`
		Total         int           `json:"total"`
		ActiveFilters int           `json:"activeFilters"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Equal(t, 1, respBody.Total)
	assert.Equal(t, 4, respBody.ActiveFilters) // search, type, wifi, price range
	mockRoomSvc.AssertExpectations(t)
}

func TestRoomHandler_SearchRooms_DefaultsWithoutParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRoomSvc := new(MockRoomService)
	mockSessionSvc := new(MockSessionService)
	handler := handlers.NewRoomHandler(mockRoomSvc, mockSessionSvc)

	r := gin.New()
	r.GET("/v1/rooms", handler.SearchRooms)

	mockRoomSvc.On("SearchRooms", search.DefaultFilter()).Return([]models.Room{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRoomSvc.AssertExpectations(t)
}

func TestRoomHandler_PostRoom_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRoomSvc := new(MockRoomService)
	mockSessionSvc := new(MockSessionService)
	handler := handlers.NewRoomHandler(mockRoomSvc, mockSessionSvc)

	r := gin.New()
	r.POST("/v1/rooms", handler.PostRoom)

	user := &models.User{ID: "user_1", Name: "Roshan Acharaya", Email: "roshan@gmail.com", Role: models.RoleLandlord}
	mockSessionSvc.On("CurrentUser").Return(user)

	created := &models.Room{ID: "room_new", Title: "City Room"}
	mockRoomSvc.On("AddRoom",
		models.Landlord{ID: "user_1", Name: "Roshan Acharaya", Email: "roshan@gmail.com"},
		"City Room", "Bright.", "Kathmandu", 400.0, models.RoomTypeSingle,
		models.Facilities{Wifi: true}, mock.Anything,
	).Return(created, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "City Room",
		"description": "Bright.",
		"location":    "Kathmandu",
		"price":       400,
		"type":        "single",
		"facilities":  map[string]bool{"wifi": true},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/rooms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRoomSvc.AssertExpectations(t)
	mockSessionSvc.AssertExpectations(t)
}

func TestRoomHandler_PostRoom_NoSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRoomSvc := new(MockRoomService)
	mockSessionSvc := new(MockSessionService)
	handler := handlers.NewRoomHandler(mockRoomSvc, mockSessionSvc)

	r := gin.New()
	r.POST("/v1/rooms", handler.PostRoom)

	mockSessionSvc.On("CurrentUser").Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"title": "City Room", "location": "Kathmandu", "type": "single",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/rooms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoomHandler_Features(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRoomSvc := new(MockRoomService)
	mockSessionSvc := new(MockSessionService)
	handler := handlers.NewRoomHandler(mockRoomSvc, mockSessionSvc)

	r := gin.New()
	r.GET("/v1/features", handler.Features)

	mockRoomSvc.On("Features").Return([]models.Feature{{Title: "Verified Listings", Icon: "shield"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/features", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Verified Listings")
}

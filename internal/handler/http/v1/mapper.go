package v1

import (
	"image"

	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/recognition"
)

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model *models.SOSAlert) *SOSAlertResponse {
	resp := &SOSAlertResponse{
		ID:            model.ID,
		AlertID:       model.AlertID,
		UserID:        model.UserID,
		UserName:      model.UserName,
		UserPhone:     model.UserPhone,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Status:        model.Status,
		TriggerMethod: model.TriggerMethod,
		ResolvedAt:    model.ResolvedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,

		NotifiedStations:    make([]StationNotificationResponse, 0, len(model.NotifiedStations)),
		NotifiedContacts:    make([]ContactNotificationResponse, 0, len(model.NotifiedContacts)),
		NotifiedNearbyUsers: make([]NearbyUserNotificationResponse, 0, len(model.NotifiedNearbyUsers)),
		LocationUpdates:     make([]LocationUpdateResponse, 0, len(model.LocationUpdates)),
	}

	for _, n := range model.NotifiedStations {
		resp.NotifiedStations = append(resp.NotifiedStations, StationNotificationResponse{
			StationID:      n.StationID,
			StationName:    n.StationName,
			DistanceMeters: n.DistanceMeters,
			NotifiedAt:     n.NotifiedAt,
		})
	}
	for _, n := range model.NotifiedContacts {
		resp.NotifiedContacts = append(resp.NotifiedContacts, ContactNotificationResponse{
			ContactName:    n.ContactName,
			ContactPhone:   n.ContactPhone,
			DeliveryStatus: n.DeliveryStatus,
			NotifiedAt:     n.NotifiedAt,
		})
	}
	for _, n := range model.NotifiedNearbyUsers {
		resp.NotifiedNearbyUsers = append(resp.NotifiedNearbyUsers, NearbyUserNotificationResponse{
			UserID:         n.UserID,
			DistanceMeters: n.DistanceMeters,
			DeliveryStatus: n.DeliveryStatus,
			NotifiedAt:     n.NotifiedAt,
		})
	}
	for _, u := range model.LocationUpdates {
		resp.LocationUpdates = append(resp.LocationUpdates, LocationUpdateResponse{
			Latitude:       u.Latitude,
			Longitude:      u.Longitude,
			AccuracyMeters: u.AccuracyMeters,
			Timestamp:      u.Timestamp,
		})
	}
	return resp
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.SOSAlert) []*SOSAlertResponse {
	responses := make([]*SOSAlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// ModelToEvidenceResponse преобразует результат обработки видео в DTO
func ModelToEvidenceResponse(model *models.EvidenceResult) *EvidenceResponse {
	return &EvidenceResponse{
		StationName:          model.StationName,
		StationEmail:         model.StationEmail,
		MatchCount:           model.MatchCount,
		UnknownCount:         model.UnknownCount,
		RecognitionAvailable: model.RecognitionAvailable,
	}
}

// ScanResultToResponse преобразует результат сканирования изображения в DTO
func ScanResultToResponse(result *recognition.ImageScanResult) *ImageScanResponse {
	resp := &ImageScanResponse{
		Recognized: make([]RecognizedFaceResponse, 0, len(result.Recognized)),
		Unknown:    make([]UnknownFaceResponse, 0, len(result.Unknown)),
		TotalFaces: result.TotalFaces,
	}
	for _, f := range result.Recognized {
		resp.Recognized = append(resp.Recognized, RecognizedFaceResponse{
			Name:       f.Name,
			Confidence: f.Confidence,
			Box:        rectToBox(f.Box),
		})
	}
	for _, f := range result.Unknown {
		resp.Unknown = append(resp.Unknown, UnknownFaceResponse{Box: rectToBox(f.Box)})
	}
	return resp
}

func rectToBox(r image.Rectangle) FaceBoxResponse {
	return FaceBoxResponse{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

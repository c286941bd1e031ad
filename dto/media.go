package dto

// Detection is the result the ML service produces for one media file
type Detection struct {
	Count      int    `json:"count"`
	Severity   string `json:"severity"`
	Confidence int    `json:"confidence"`
}

// LocateRequest is the JSON body for POST /api/locate
type LocateRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lon float64 `json:"lon" binding:"required"`
}

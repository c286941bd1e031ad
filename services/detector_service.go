package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"potholetrack/dto"
)

// DetectorService stores uploaded media under the uploads directory and
// forwards it to the external ML detection service. The detector itself
// is an external collaborator; only its HTTP contract lives here.
type DetectorService struct {
	mlURL     string
	uploadDir string
	client    *http.Client
}

// NewDetectorService creates a detector client against the given ML
// service base URL, saving uploads under uploadDir.
func NewDetectorService(mlURL, uploadDir string) *DetectorService {
	return &DetectorService{
		mlURL:     strings.TrimRight(mlURL, "/"),
		uploadDir: uploadDir,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// predictRequest is the body the ML service expects on POST /predict
type predictRequest struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// predictResponse mirrors the ML service's detection payload
type predictResponse struct {
	Count      int    `json:"count"`
	Severity   string `json:"severity"`
	Confidence int    `json:"confidence"`
	MediaURL   string `json:"media_url"`
	MediaType  string `json:"media_type"`
}

// Analyze saves the uploaded file and runs detection on it. It returns
// the detection result and the public URL of the stored media.
func (s *DetectorService) Analyze(file multipart.File, header *multipart.FileHeader) (dto.Detection, string, error) {
	mediaURL, mediaType, err := s.saveUpload(file, header)
	if err != nil {
		return dto.Detection{}, "", err
	}

	body, err := json.Marshal(predictRequest{URL: mediaURL, Type: mediaType})
	if err != nil {
		return dto.Detection{}, "", err
	}

	resp, err := s.client.Post(s.mlURL+"/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		return dto.Detection{}, "", fmt.Errorf("detection service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dto.Detection{}, "", fmt.Errorf("detection service returned status %d", resp.StatusCode)
	}

	var prediction predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return dto.Detection{}, "", fmt.Errorf("decode detection response: %w", err)
	}

	detection := dto.Detection{
		Count:      prediction.Count,
		Severity:   prediction.Severity,
		Confidence: prediction.Confidence,
	}
	return detection, mediaURL, nil
}

// saveUpload writes the file to the uploads directory under a random
// name and returns its public URL and media type (image or video).
func (s *DetectorService) saveUpload(file multipart.File, header *multipart.FileHeader) (string, string, error) {
	contentType := header.Header.Get("Content-Type")
	mediaType := "image"
	switch {
	case strings.HasPrefix(contentType, "video/"):
		mediaType = "video"
	case strings.HasPrefix(contentType, "image/"):
		mediaType = "image"
	default:
		return "", "", invalid("Please upload an image or video file")
	}

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", "", fmt.Errorf("store upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", "", fmt.Errorf("store upload: %w", err)
	}

	return "/uploads/" + name, mediaType, nil
}

package classifier

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// MaxPredictions caps the ranked list the model service returns.
const MaxPredictions = 3

const defaultTimeout = 15 * time.Second

type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // 0-100
}

type (
	// Classifier is the opaque image-to-food-label scoring function. The
	// model service can be slow or down; callers must treat an error as a
	// signal to fall back to manual entry, never as fatal.
	Classifier interface {
		Classify(ctx context.Context, image []byte, filename string) ([]Prediction, error)
	}

	httpClassifier struct {
		modelURL string
		client   *http.Client
	}
)

func NewHTTPClassifier() Classifier {
	timeout := defaultTimeout
	if raw := utils.GetConfig("MODEL_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &httpClassifier{
		modelURL: utils.GetConfig("MODEL_URL"),
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *httpClassifier) Classify(ctx context.Context, image []byte, filename string) ([]Prediction, error) {
	if c.modelURL == "" {
		return nil, domain.ErrClassifierUnavailable
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err = part.Write(image); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// Timeouts and connection failures both degrade to manual entry.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrClassifierUnavailable
		}
		return nil, domain.ErrClassifierUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("model service error: %s - %s: %w", resp.Status, string(bodyBytes), domain.ErrClassifierUnavailable)
	}

	var modelResp struct {
		Predictions []Prediction `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&modelResp); err != nil {
		return nil, domain.ErrClassifierUnavailable
	}

	if len(modelResp.Predictions) == 0 {
		return nil, domain.ErrNoPrediction
	}
	if len(modelResp.Predictions) > MaxPredictions {
		modelResp.Predictions = modelResp.Predictions[:MaxPredictions]
	}
	return modelResp.Predictions, nil
}

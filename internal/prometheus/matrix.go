package prometheus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/prometheus/common/model"
)

// queryRangeResponse is the body of a /api/v1/query_range response.
type queryRangeResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Data   struct {
		ResultType model.ValueType `json:"resultType"`
		Result     model.Matrix    `json:"result"`
	} `json:"data"`
}

// DecodeMatrix reads a matrix saved to disk. It accepts either a bare matrix
// array or a full query_range response body.
func DecodeMatrix(data []byte) (model.Matrix, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decoding matrix: empty input")
	}

	if trimmed[0] == '[' {
		var matrix model.Matrix
		if err := json.Unmarshal(trimmed, &matrix); err != nil {
			return nil, fmt.Errorf("decoding matrix: %w", err)
		}
		return matrix, nil
	}

	var resp queryRangeResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("decoding query_range response: %w", err)
	}
	if resp.Status != "" && resp.Status != "success" {
		return nil, fmt.Errorf("query_range response status %q: %s", resp.Status, resp.Error)
	}
	if resp.Data.ResultType != model.ValMatrix {
		return nil, fmt.Errorf("unexpected result type: %s", resp.Data.ResultType)
	}
	return resp.Data.Result, nil
}

package export

import (
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// maxShareCodeBytes bounds the JSON payload a share code may carry. QR
// version 40 tops out near 3KB of binary data; staying under keeps the
// codes scannable on paper.
const maxShareCodeBytes = 2048

// shareCodeSize is the PNG edge length in pixels.
const shareCodeSize = 512

// ExportShareCode writes a QR code PNG encoding the puzzle
// configuration as JSON, so a puzzle can be shared by scanning.
func ExportShareCode(path string, p model.Puzzle) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}
	if len(data) > maxShareCodeBytes {
		return fmt.Errorf("puzzle too large for a share code: %d bytes (max %d)", len(data), maxShareCodeBytes)
	}
	if err := qrcode.WriteFile(string(data), qrcode.Medium, shareCodeSize, path); err != nil {
		return fmt.Errorf("failed to write share code to %s: %w", path, err)
	}
	return nil
}

// DecodeShareCode parses the JSON payload of a scanned share code back
// into a puzzle. The scanning itself is a caller concern; this only
// reverses the encoding used by ExportShareCode.
func DecodeShareCode(payload []byte) (model.Puzzle, error) {
	var p model.Puzzle
	if err := json.Unmarshal(payload, &p); err != nil {
		return model.Puzzle{}, fmt.Errorf("invalid share code payload: %w", err)
	}
	for i := range p.Pieces {
		shape, err := model.NewShape(p.Pieces[i].Shape)
		if err != nil {
			return model.Puzzle{}, fmt.Errorf("share code piece %d: %w", i, err)
		}
		p.Pieces[i].Shape = shape
	}
	return p, nil
}

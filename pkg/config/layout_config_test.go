package config

import "testing"

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name           string
		worldX, worldY float32
		cameraX        float32
		wantX, wantY   float32
	}{
		{"craft at origin", 0, 0, 0, CraftScreenX, WorldOriginScreenY},
		{"one meter up", 0, 1, 0, CraftScreenX, WorldOriginScreenY - PixelsPerMeter},
		{"camera follows craft", 10, 0, 10, CraftScreenX, WorldOriginScreenY},
		{"point ahead of camera", 12, -2, 10, CraftScreenX + 2*PixelsPerMeter, WorldOriginScreenY + 2*PixelsPerMeter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := WorldToScreen(tt.worldX, tt.worldY, tt.cameraX)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WorldToScreen(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.worldX, tt.worldY, tt.cameraX, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

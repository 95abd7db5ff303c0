package controller

import (
	"net/http/httptest"
	"testing"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		path    string
		want    int
		wantErr bool
	}{
		{"/api/wardrobe-items/12", 12, false},
		{"/api/wardrobe-items/12/image", 12, false},
		{"/api/wardrobe-items/", 0, true},
		{"/api/wardrobe-items/abc", 0, true},
		{"/api/wardrobe-items/-3", 0, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.path, nil)
		got, err := pathID(r, wardrobeItemsPath)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.path)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%s: expected %d, got %d (%v)", tt.path, tt.want, got, err)
		}
	}
}

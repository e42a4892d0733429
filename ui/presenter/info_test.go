package presenter

import "testing"

func TestInfoLine(t *testing.T) {
	got := InfoLine("holiday.jpg", 1920, 1080, "2.3 MB", 4, 12, 3)
	want := "holiday.jpg  |  1920 x 1080 px  |  2.3 MB  |  4 of 12  |  Crops saved: 3"
	if got != want {
		t.Fatalf("InfoLine = %q, want %q", got, want)
	}
}

func TestInfoLine_NoCropsYet(t *testing.T) {
	got := InfoLine("a.png", 10, 10, "100 B", 1, 1, 0)
	want := "a.png  |  10 x 10 px  |  100 B  |  1 of 1  |  Crops saved: 0"
	if got != want {
		t.Fatalf("InfoLine = %q, want %q", got, want)
	}
}

package cmd

type Config struct {
	HTTPPort       string
	Environment    string
	LogLevel       string
	CourierAddress string
	CourierLat     float64
	CourierLng     float64
	MapFitPadding  int
	MapCenterZoom  int
}

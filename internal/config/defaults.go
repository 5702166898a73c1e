package config

const (
	DefaultModelPath            = "./sauron/data/yolov8n.onnx"
	DefaultInputSize            = 640
	DefaultDatasetName          = "COCO"
	DefaultUntaggedImageFolder  = "/feonix-images/untagged"
	DefaultDetectionImageFolder = "/feonix-images/detection"
	DefaultMappingImageFolder   = "/feonix-images/mapping"
)

// AcceptedDatasets lists the dataset names the vision model can load.
func AcceptedDatasets() []string {
	return []string{DefaultDatasetName}
}

// DefaultSauronConfig returns the canonical vision model defaults.
func DefaultSauronConfig() SauronConfig {
	return SauronConfig{
		ModelPath:            DefaultModelPath,
		InputSize:            DefaultInputSize,
		DatasetName:          DefaultDatasetName,
		FOV:                  [2]float64{93.0, 81.0},
		Resolution:           [2]int32{4096, 2160},
		UntaggedImageFolder:  DefaultUntaggedImageFolder,
		DetectionImageFolder: DefaultDetectionImageFolder,
		MappingImageFolder:   DefaultMappingImageFolder,
	}
}

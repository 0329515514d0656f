package pipeline

import (
	"fmt"
	"sort"

	"adcorr/pkg/corrections"
	"adcorr/pkg/frames"
	"adcorr/pkg/geometry"
)

// Names of the correction sequences described in 'The modular small-angle
// X-ray scattering data correction sequence'
// (https://doi.org/10.1107/S1600576717015096).
const (
	InstrumentalBackgroundName = "instrumental_background"
	SimpleSampleName           = "simple_sample"
	DispersedSampleName        = "dispersed_sample"
)

// Params holds every input the named pipelines draw on. Each pipeline reads
// only the fields its stages need.
type Params struct {
	// Geometry shared by every angle-dependent stage.
	BeamCenter geometry.Pair
	PixelSizes geometry.Pair
	Distance   float64

	// Mask of invalid detector pixels; nil masks nothing.
	Mask *frames.Mask

	// Detector response.
	CountTimes                    []float64
	MinimumPulseSeparation        float64
	MinimumArrivalSeparation      float64
	BaseDarkCurrent               float64
	TemporalDarkCurrent           float64
	FluxDependentDarkCurrent      float64
	Flatfield                     *frames.Stack // nil for uniform sensitivity
	DetectorAbsorptionCoefficient float64
	DetectorThickness             float64

	// Sample.
	InstrumentalBackground      *frames.Stack
	HorizontalPolarization      float64
	SampleAbsorptionCoefficient float64
	SampleThickness             float64

	// Dispersed samples only.
	DispersantBackground *frames.Stack
	DisplacedFraction    float64
}

var builders = map[string]func(Params) (*Pipeline, error){
	InstrumentalBackgroundName: InstrumentalBackground,
	SimpleSampleName:           SimpleSample,
	DispersedSampleName:        DispersedSample,
}

// Names returns the names accepted by Build, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the named pipeline configured with params.
func Build(name string, params Params) (*Pipeline, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPipeline, name)
	}
	return build(params)
}

// InstrumentalBackground reduces a stack of instrumental background frames:
// mask, deadtime, dark current, frame time, transmitted flux, flatfield,
// angular efficiency and finally frame averaging.
func InstrumentalBackground(p Params) (*Pipeline, error) {
	return New(InstrumentalBackgroundName, instrumentalStages(p)...), nil
}

// SimpleSample reduces a stack of sample frames: the instrumental background
// stages, then background subtraction, solid angle, polarization,
// self-absorption and thickness normalization.
func SimpleSample(p Params) (*Pipeline, error) {
	if p.InstrumentalBackground == nil {
		return nil, fmt.Errorf("%w: %s needs an instrumental background", ErrMissingInput, SimpleSampleName)
	}
	return New(SimpleSampleName, sampleStages(p)...), nil
}

// DispersedSample reduces a sample dispersed in a solvent: the simple sample
// stages, then subtraction of the dispersant background scaled by the
// fraction of dispersant the analyte leaves in place.
func DispersedSample(p Params) (*Pipeline, error) {
	if p.InstrumentalBackground == nil {
		return nil, fmt.Errorf("%w: %s needs an instrumental background", ErrMissingInput, DispersedSampleName)
	}
	if p.DispersantBackground == nil {
		return nil, fmt.Errorf("%w: %s needs a dispersant background", ErrMissingInput, DispersedSampleName)
	}

	stages := append(sampleStages(p), Stage{
		Name: "dispersant background",
		Apply: func(s *frames.Stack) (*frames.Stack, error) {
			retained, err := corrections.CorrectDisplacedVolume(p.DispersantBackground, p.DisplacedFraction)
			if err != nil {
				return nil, err
			}
			return corrections.SubtractBackground(s, retained)
		},
	})
	return New(DispersedSampleName, stages...), nil
}

func instrumentalStages(p Params) []Stage {
	return []Stage{
		{Name: "mask", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			if p.Mask == nil {
				return s, nil
			}
			return corrections.MaskFrames(s, p.Mask)
		}},
		{Name: "deadtime", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.CorrectDeadtime(s, p.CountTimes, p.MinimumPulseSeparation, p.MinimumArrivalSeparation)
		}},
		{Name: "dark current", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.CorrectDarkCurrent(s, p.CountTimes, p.BaseDarkCurrent, p.TemporalDarkCurrent, p.FluxDependentDarkCurrent)
		}},
		{Name: "frame time", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.NormalizeFrameTime(s, p.CountTimes)
		}},
		{Name: "transmitted flux", Apply: corrections.NormalizeTransmittedFlux},
		{Name: "flatfield", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			if p.Flatfield == nil {
				return s, nil
			}
			return corrections.CorrectFlatfield(s, p.Flatfield)
		}},
		{Name: "angular efficiency", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.CorrectAngularEfficiency(s, p.BeamCenter, p.PixelSizes, p.Distance,
				p.DetectorAbsorptionCoefficient, p.DetectorThickness)
		}},
		{Name: "average", Apply: corrections.AverageAllFrames},
	}
}

func sampleStages(p Params) []Stage {
	return append(instrumentalStages(p),
		Stage{Name: "instrumental background", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.SubtractBackground(s, p.InstrumentalBackground)
		}},
		Stage{Name: "solid angle", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.CorrectSolidAngle(s, p.BeamCenter, p.PixelSizes, p.Distance)
		}},
		Stage{Name: "polarization", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.CorrectPolarization(s, p.BeamCenter, p.PixelSizes, p.Distance, p.HorizontalPolarization)
		}},
		Stage{Name: "self absorption", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.CorrectSelfAbsorption(s, p.BeamCenter, p.PixelSizes, p.Distance,
				p.SampleAbsorptionCoefficient, p.SampleThickness)
		}},
		Stage{Name: "thickness", Apply: func(s *frames.Stack) (*frames.Stack, error) {
			return corrections.NormalizeThickness(s, p.SampleThickness)
		}},
	)
}

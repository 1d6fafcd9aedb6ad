package waves

import (
	"strconv"
	"time"

	"ripple/internal/core"
)

// Parameters reports the constants the surface is running with.
func (s *Surface) Parameters() core.ParameterSnapshot {
	c := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Domain",
			Params: []core.Parameter{
				intParam("origin_x", "Origin X", c.OriginX),
				intParam("end_x", "End X", c.EndX),
				intParam("height", "Height", c.Height),
				intParam("granularity", "Granularity", c.Granularity),
				intParam("springs", "Springs", c.SegmentCount()),
			},
		},
		{
			Name: "Springs",
			Params: []core.Parameter{
				floatParam("tension", "Tension", c.Params.Tension),
				floatParam("dampening", "Dampening", c.Params.Dampening),
				floatParam("spread_speed", "Spread speed", c.Params.SpreadSpeed),
				intParam("passes", "Coupling passes", c.Params.Passes),
				floatParam("rest_epsilon", "Rest epsilon", c.Params.RestEpsilon),
			},
		},
		{
			Name: "Impulse",
			Params: []core.Parameter{
				floatParam("initial_speed", "Initial speed", c.InitialSpeed),
				durationParam("tick_interval", "Tick interval", c.TickInterval),
				boolParam("rebuild_on_impulse", "Rebuild on impulse", c.RebuildOnImpulse),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: value.String(),
	}
}

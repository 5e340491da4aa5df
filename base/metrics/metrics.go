package metrics

const (
	SamplerSamplesH = "The total number of clock samples taken"
	SamplerSamplesN = "tickservice_sampler_samples"

	SamplerMonotonicSecondsH = "The current monotonic clock reading in whole seconds"
	SamplerMonotonicSecondsN = "tickservice_sampler_monotonic_seconds"

	SamplerJiffiesH = "The current monotonic clock reading in scheduler ticks"
	SamplerJiffiesN = "tickservice_sampler_jiffies"

	SamplerTickFrequencyH = "The resolved scheduler tick frequency in ticks per second"
	SamplerTickFrequencyN = "tickservice_sampler_tick_frequency"
)

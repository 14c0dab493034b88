package telemetry

import "go.opentelemetry.io/otel/attribute"

func otelStrategyAttr(strategy string) attribute.KeyValue {
	return attribute.String("agentsynth.strategy", strategy)
}

func otelComponentAttr(component string) attribute.KeyValue {
	return attribute.String("agentsynth.component", component)
}

func otelSuccessAttr(success bool) attribute.KeyValue {
	return attribute.Bool("agentsynth.success", success)
}

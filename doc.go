// Package correlator provides an endure plugin that registers the correlation-keyed
// log capture store.
//
// The [Plugin] type implements the endure plugin lifecycle (Init, Serve, Stop,
// Name, Weight, Provides). On Serve it installs the capture core from the
// [capture] package as a consumer of the process-global zap logger, and it
// provides the store to dependent plugins through the [Correlator] interface.
// Configuration is read from the container's configuration under the
// "correlator" key.
//
// The plugin declares one dependency-injection interface:
//   - [Configurer] — unmarshals configuration sections and checks their existence.
//
// Library users who do not run an endure container call capture.Initialize
// directly; the plugin is only the container integration.
package correlator

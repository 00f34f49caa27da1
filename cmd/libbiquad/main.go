//go:build cgo

// Command libbiquad builds the filter as a C shared library for native audio
// hosts:
//
//	go build -buildmode=c-shared -o libbiquad.so ./cmd/libbiquad
//
// The generated header declares
//
//	uintptr_t create_lowpass_filter(double sample_rate, double cutoff);
//	float     biquad_process(uintptr_t handle, float input);
//	void      biquad_set_cutoff(uintptr_t handle, double cutoff);
//	void      biquad_free(uintptr_t handle);
//
// A handle owns one filter until biquad_free. The host must not call into
// the same handle from more than one thread at a time.
package main

// #include <stdint.h>
import "C"

import "github.com/cwbudde/algo-biquad/internal/hostapi"

//export create_lowpass_filter
func create_lowpass_filter(sampleRate, cutoff C.double) C.uintptr_t {
	return C.uintptr_t(hostapi.Default.CreateLowpassFilter(float64(sampleRate), float64(cutoff)))
}

//export biquad_process
func biquad_process(handle C.uintptr_t, input C.float) C.float {
	return C.float(hostapi.Default.Process(hostapi.Handle(handle), float32(input)))
}

//export biquad_set_cutoff
func biquad_set_cutoff(handle C.uintptr_t, cutoff C.double) {
	hostapi.Default.SetCutoff(hostapi.Handle(handle), float64(cutoff))
}

//export biquad_free
func biquad_free(handle C.uintptr_t) {
	hostapi.Default.Release(hostapi.Handle(handle))
}

func main() {}

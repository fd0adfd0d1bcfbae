// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the rest of the module
// builds on.
//
//   - Source: interleaved float32 samples in [-1, 1]
//   - Decoder and Registry: format decoders keyed by file extension
//   - Spec: the shape of a stream, and Match to compare two of them
//   - Resampler and MonoMixer: pipeline stages that are Sources themselves
//
// # Pipelines
//
// Stages wrap each other:
//
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := mono.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// A read may return data together with io.EOF, so consume buf[:n] before
// checking the error.
//
// # Format Checks
//
// Spec.Match reports every field that differs, each as a *MismatchError:
//
//	if err := audio.SpeechSpec.Match(got); err != nil {
//	    // err matches audio.ErrFormatMismatch
//	    // "sample rate: expected 16000, found 44100"
//	}
package audio

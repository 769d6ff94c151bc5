package array

// SafetyChecks reports whether this build was compiled with the
// adlib_safety build tag, matching spec's ARRAY_SAFETY_CHECKS knob: debug
// builds carry two magic guard words per array header for use-after-free
// and wrong-pointer detection; release builds carry nothing and skip every
// assertion.
const SafetyChecks = safetyChecksEnabled

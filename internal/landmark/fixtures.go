package landmark

// LetterAHand returns a preset landmark set posed as the fingerspelled
// letter A: a closed fist with the thumb resting against the side.
// Coordinates are normalized frame-relative values.
func LetterAHand() Set {
	s := make(Set, NumLandmarks)

	// Wrist at the base of the frame
	s[Wrist] = Point{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb upright along the side of the fist
	s[ThumbCMC] = Point{X: 0.57, Y: 0.76, Z: 0.01}
	s[ThumbMCP] = Point{X: 0.60, Y: 0.68, Z: 0.01}
	s[ThumbIP] = Point{X: 0.61, Y: 0.60, Z: 0.01}
	s[ThumbTip] = Point{X: 0.61, Y: 0.53, Z: 0.01}

	// Index finger curled into the palm
	s[IndexMCP] = Point{X: 0.56, Y: 0.62, Z: -0.01}
	s[IndexPIP] = Point{X: 0.56, Y: 0.56, Z: -0.04}
	s[IndexDIP] = Point{X: 0.55, Y: 0.61, Z: -0.05}
	s[IndexTip] = Point{X: 0.54, Y: 0.66, Z: -0.03}

	// Middle finger curled
	s[MiddleMCP] = Point{X: 0.51, Y: 0.61, Z: -0.01}
	s[MiddlePIP] = Point{X: 0.51, Y: 0.54, Z: -0.04}
	s[MiddleDIP] = Point{X: 0.50, Y: 0.60, Z: -0.05}
	s[MiddleTip] = Point{X: 0.49, Y: 0.66, Z: -0.03}

	// Ring finger curled
	s[RingMCP] = Point{X: 0.46, Y: 0.62, Z: -0.01}
	s[RingPIP] = Point{X: 0.46, Y: 0.55, Z: -0.04}
	s[RingDIP] = Point{X: 0.45, Y: 0.61, Z: -0.05}
	s[RingTip] = Point{X: 0.44, Y: 0.66, Z: -0.03}

	// Pinky curled
	s[PinkyMCP] = Point{X: 0.41, Y: 0.64, Z: -0.01}
	s[PinkyPIP] = Point{X: 0.41, Y: 0.58, Z: -0.03}
	s[PinkyDIP] = Point{X: 0.40, Y: 0.63, Z: -0.04}
	s[PinkyTip] = Point{X: 0.39, Y: 0.67, Z: -0.02}

	return s
}

// LetterBHand returns a preset landmark set posed as the fingerspelled
// letter B: four fingers extended upward, thumb folded across the palm.
func LetterBHand() Set {
	s := make(Set, NumLandmarks)

	s[Wrist] = Point{X: 0.50, Y: 0.82, Z: 0.0}

	// Thumb folded across the palm
	s[ThumbCMC] = Point{X: 0.56, Y: 0.76, Z: 0.01}
	s[ThumbMCP] = Point{X: 0.55, Y: 0.70, Z: -0.01}
	s[ThumbIP] = Point{X: 0.51, Y: 0.67, Z: -0.03}
	s[ThumbTip] = Point{X: 0.47, Y: 0.66, Z: -0.04}

	// Index finger extended upward
	s[IndexMCP] = Point{X: 0.55, Y: 0.62, Z: 0.0}
	s[IndexPIP] = Point{X: 0.56, Y: 0.52, Z: 0.0}
	s[IndexDIP] = Point{X: 0.56, Y: 0.44, Z: 0.0}
	s[IndexTip] = Point{X: 0.56, Y: 0.37, Z: 0.0}

	// Middle finger extended (slightly longer)
	s[MiddleMCP] = Point{X: 0.50, Y: 0.60, Z: 0.0}
	s[MiddlePIP] = Point{X: 0.50, Y: 0.49, Z: 0.0}
	s[MiddleDIP] = Point{X: 0.50, Y: 0.40, Z: 0.0}
	s[MiddleTip] = Point{X: 0.50, Y: 0.32, Z: 0.0}

	// Ring finger extended
	s[RingMCP] = Point{X: 0.45, Y: 0.62, Z: 0.0}
	s[RingPIP] = Point{X: 0.44, Y: 0.51, Z: 0.0}
	s[RingDIP] = Point{X: 0.44, Y: 0.42, Z: 0.0}
	s[RingTip] = Point{X: 0.44, Y: 0.35, Z: 0.0}

	// Pinky extended
	s[PinkyMCP] = Point{X: 0.40, Y: 0.65, Z: 0.0}
	s[PinkyPIP] = Point{X: 0.39, Y: 0.56, Z: 0.0}
	s[PinkyDIP] = Point{X: 0.38, Y: 0.49, Z: 0.0}
	s[PinkyTip] = Point{X: 0.38, Y: 0.43, Z: 0.0}

	return s
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package getkey reads single keypresses and edited lines from a console.
//
// When the input is a terminal it is switched to raw mode for the duration of
// each read, so keys arrive without waiting for Enter and without the
// terminal's own echo. Other inputs, such as pipes and files, are read as
// they are.
//
// Example:
//
//	fmt.Print("Enter a string of text: ")
//	text, err := getkey.GetStr()
//	if err != nil {
//		return err
//	}
//	fmt.Printf("The text you entered was: %q\n", text)
package getkey

/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package ioutils

import (
	"fmt"

	"github.com/nabbar/zipper/zerr"
)

const (
	ErrorParamsEmpty zerr.CodeError = iota + zerr.MinPkgIOUtils
	ErrorSyscallRLimitGet
	ErrorSyscallRLimitSet
	ErrorIOFileStat
	ErrorIOFileOpen
	ErrorIOFileClose
	ErrorNilPointer
	ErrorPathIsDir
	ErrorPathIsFile
)

func init() {
	if zerr.ExistInMapMessage(zerr.MinPkgIOUtils) {
		panic(fmt.Errorf("error code collision in ioutils"))
	}
	zerr.RegisterIdFctMessage(zerr.MinPkgIOUtils, getMessage)
}

func getMessage(code zerr.CodeError) string {
	switch code {
	case ErrorParamsEmpty:
		return "given parameters is empty"
	case ErrorSyscallRLimitGet:
		return "error on retrieve value in syscall rlimit"
	case ErrorSyscallRLimitSet:
		return "error on changing value in syscall rlimit"
	case ErrorIOFileStat:
		return "error occur while trying to get stat of file"
	case ErrorIOFileOpen:
		return "error occur while trying to open file"
	case ErrorIOFileClose:
		return "error occur while trying to close file"
	case ErrorNilPointer:
		return "cannot call function for a nil pointer"
	case ErrorPathIsDir:
		return "path already exists but is a directory"
	case ErrorPathIsFile:
		return "path already exists but is not a directory"
	}

	return zerr.NullMessage
}

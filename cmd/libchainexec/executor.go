package main

/*
#include <stdio.h>
#include "chainexec_types.h"
*/
import "C"

import (
	"io"
	"os"
	"syscall"

	"github.com/goodnatureofminers/chainexec/internal/handle"
)

// fdWriter wraps a duplicate of fd, or returns nil for a negative fd.
func fdWriter(fd C.int) io.Writer {
	if fd < 0 {
		return nil
	}
	dup, err := syscall.Dup(int(fd))
	if err != nil {
		return nil
	}
	return os.NewFile(uintptr(dup), "fd")
}

func fileWriter(f *C.FILE) io.Writer {
	if f == nil {
		return nil
	}
	C.fflush(f)
	return fdWriter(C.fileno(f))
}

//export executor_construct
func executor_construct(path *C.char, sout, serr *C.FILE) C.executor_t {
	return C.executor_t(registry.Construct(C.GoString(path), fileWriter(sout), fileWriter(serr)))
}

//export executor_construct_fd
func executor_construct_fd(path *C.char, soutFD, serrFD C.int) C.executor_t {
	return C.executor_t(registry.Construct(C.GoString(path), fdWriter(soutFD), fdWriter(serrFD)))
}

//export executor_construct_devnull
func executor_construct_devnull(path *C.char) C.executor_t {
	return C.executor_t(registry.Construct(C.GoString(path), nil, nil))
}

//export executor_destruct
func executor_destruct(exec C.executor_t) {
	registry.Destruct(handle.Handle(exec))
}

//export executor_initchain
func executor_initchain(exec C.executor_t) C.int {
	return cBool(registry.InitChain(handle.Handle(exec)))
}

//export executor_run
func executor_run(exec C.executor_t) C.int {
	return cBool(registry.Run(handle.Handle(exec)))
}

//export executor_run_wait
func executor_run_wait(exec C.executor_t) C.int {
	return cBool(registry.RunWait(handle.Handle(exec)))
}

//export executor_stop
func executor_stop(exec C.executor_t) {
	registry.Stop(handle.Handle(exec))
}

package main

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"
import (
	"time"
	"unsafe"

	"github.com/apex/log"
	"shogilegal/internal/shogi"
)

// 盘面：81 字节单字母编码，下标 (段-1)*9 + (筋-1)；持驹：int32[2][7]，顺序 歩香桂銀金角飛。
// 返回值为负数时是 -ErrorKind。

//export ShogiIsLegalMove
func ShogiIsLegalMove(boardPtr *C.char, handsPtr *C.int32_t, side C.int, from, to C.int, piece C.char, promote C.bool) C.int {
	pos, c, err := cToPosition(boardPtr, handsPtr, side)
	if err != nil {
		return C.int(errorCode(err))
	}
	m, err := makeMove(pos, c, int(from), int(to), byte(piece), bool(promote))
	if err != nil {
		return C.int(errorCode(err))
	}
	v, err := pos.IsLegalMove(c, m)
	if err != nil {
		return C.int(errorCode(err))
	}
	return C.int(verdictBits(v))
}

//export ShogiCountLegalMoves
func ShogiCountLegalMoves(boardPtr *C.char, handsPtr *C.int32_t, side C.int) C.int {
	start := time.Now()
	pos, c, err := cToPosition(boardPtr, handsPtr, side)
	if err != nil {
		return C.int(errorCode(err))
	}
	moves, err := pos.LegalMoves(c)
	if err != nil {
		return C.int(errorCode(err))
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		log.WithFields(log.Fields{"side": c, "moves": len(moves), "took": elapsed}).Warn("slow legal move count")
	}
	return C.int(len(moves))
}

//export ShogiCheckCount
func ShogiCheckCount(boardPtr *C.char, side C.int) C.int {
	pos, c, err := cToPosition(boardPtr, nil, side)
	if err != nil {
		return C.int(errorCode(err))
	}
	n, err := pos.CheckCount(c)
	if err != nil {
		return C.int(errorCode(err))
	}
	return C.int(n)
}

func cToPosition(boardPtr *C.char, handsPtr *C.int32_t, side C.int) (*shogi.Position, shogi.Color, error) {
	codes := C.GoBytes(unsafe.Pointer(boardPtr), shogi.NumSquares)
	var hands []int32
	if handsPtr != nil {
		raw := unsafe.Slice((*int32)(unsafe.Pointer(handsPtr)), handSlots)
		hands = append(hands, raw...)
	}
	return toPosition(codes, hands, int(side))
}

func main() {}

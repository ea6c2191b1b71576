// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 型付きエラーはすべて cockroachdb/errors でスタックトレースを付与され、
// zerolog の構造化ログにそのまま埋め込めます。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("gdeval-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// ConvergenceWarning などの警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nil を渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// ConvergenceWarning は最適化アルゴリズムが収束しなかった場合に発生する警告です。
type ConvergenceWarning struct {
	Algorithm  string
	Iterations int
	Message    string
}

func (w *ConvergenceWarning) Error() string {
	if w.Message != "" {
		return fmt.Sprintf("%s failed to converge after %d iterations: %s", w.Algorithm, w.Iterations, w.Message)
	}
	return fmt.Sprintf("%s failed to converge after %d iterations. Consider raising the iteration cap or lowering the learning rate.", w.Algorithm, w.Iterations)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("algorithm", w.Algorithm).
		Int("iterations", w.Iterations).
		Str("message", w.Message).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning は新しいConvergenceWarningを作成します。
func NewConvergenceWarning(algorithm string, iterations int, message string) *ConvergenceWarning {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations, Message: message}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Predict` や `Score` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("gdeval: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("gdeval: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// 空のサンプル集合、負のカウント、正でない学習率などの呼び出し側の誤りを表します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("gdeval: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("gdeval: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError はモデルに関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gdeval: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("gdeval: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ConvergenceTimeoutError は反復上限に達しても停止条件が満たされなかった場合のエラーです。
// 正常な収束とは区別されます。
type ConvergenceTimeoutError struct {
	Algorithm  string
	Iterations int
	LastCost   float64
}

func (e *ConvergenceTimeoutError) Error() string {
	return fmt.Sprintf("gdeval: %s: no convergence within %d iterations (last cost %.6g)", e.Algorithm, e.Iterations, e.LastCost)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConvergenceTimeoutError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("algorithm", e.Algorithm).
		Int("iterations", e.Iterations).
		Float64("last_cost", e.LastCost).
		Str("type", "ConvergenceTimeoutError")
}

// NewConvergenceTimeoutError は新しいConvergenceTimeoutErrorを作成し、スタックトレースを付与します。
func NewConvergenceTimeoutError(algorithm string, iterations int, lastCost float64) error {
	err := &ConvergenceTimeoutError{Algorithm: algorithm, Iterations: iterations, LastCost: lastCost}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// ===========================================================================
//
//	数値計算のエラー型
//
// ===========================================================================

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// 学習率が大きすぎてコストが発散した場合など、NaN や Inf を検出します。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "cost", "gradient_update"）
	Values    []float64 // 問題のある値
	Iteration int       // 発生したイテレーション番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("gdeval: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Int("iteration", e.Iteration).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix は特異行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")
)

//go:build !mobile

// 非移动端构建的占位实现。
// 真正的绑定入口在 mobile.go / embed.go 中，仅随 -tags mobile 编译；
// 这里保证普通构建下包仍然可引用。
package mobile

// Dummy 空导出函数，让包在非移动端构建时也有导出符号
func Dummy() {}

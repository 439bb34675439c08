//go:build !android

package utils

// EnsureStorageDir 准备设置存储目录
//
// 桌面端由 gdata 按 AppName 选择并创建目录，这里返回空路径表示交给 gdata。
func EnsureStorageDir() (string, error) {
	return "", nil
}

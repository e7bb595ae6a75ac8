package geo

import "math"

// DegreeKm 每度经纬度对应的近似公里数
const DegreeKm = 111.111

// Distance 计算用户坐标到目标坐标的近似距离（公里）
// 平面近似：111.111 * sqrt(dLat^2 + dLon^2)，不是测地线公式，
// 只适用于短距离的排序用途；不能换成 haversine，否则排序结果会变化。
// 经纬度不做范围校验，越界值按普通浮点参与计算
func Distance(userLat, userLon, lat, lon float64) float64 {
	dLat := lat - userLat
	dLon := lon - userLon
	return DegreeKm * math.Sqrt(dLat*dLat+dLon*dLon)
}

package components

// 碰撞标签，对应原版中 GameObject 的 tag / name
const (
	TagPlayer     = "Player"
	TagEnemy      = "Enemy"
	TagProjectile = "Projectile"
	TagTorpedo    = "Torpedo"
	TagCollidable = "Collidable"      // 实心天体表面
	TagInfluence  = "AreaOfInfluence" // 天体影响区（触发器）
)
